package http

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/campus-stock-api/internal/application/dto"
	"github.com/jhoicas/campus-stock-api/internal/application/excel"
	"github.com/jhoicas/campus-stock-api/internal/domain"
)

const contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExcelHandler maneja la importación y exportación de planillas de stock.
type ExcelHandler struct {
	importUC  *excel.ImportUseCase
	exportUC  *excel.ExportUseCase
	uploadDir string
}

// NewExcelHandler construye el handler. uploadDir vacío usa el tmp del sistema.
func NewExcelHandler(importUC *excel.ImportUseCase, exportUC *excel.ExportUseCase, uploadDir string) *ExcelHandler {
	if uploadDir == "" {
		uploadDir = os.TempDir()
	}
	return &ExcelHandler{importUC: importUC, exportUC: exportUC, uploadDir: uploadDir}
}

// Import godoc
// @Summary      Importar planilla xlsx al stock de un campus
// @Tags         excel
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        id    path      string  true  "ID del campus"
// @Param        file  formData  file    true  "Archivo .xlsx"
// @Success      200   {object}  excel.ImportReport
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/campuses/{id}/stocks/import [post]
func (h *ExcelHandler) Import(c *fiber.Ctx) error {
	campusID := c.Params("id")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "campo multipart 'file' requerido"})
	}
	if !strings.EqualFold(filepath.Ext(fileHeader.Filename), ".xlsx") {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNSUPPORTED_FILE", Message: "solo se aceptan archivos .xlsx"})
	}

	// El archivo se persiste a disco antes de parsear y se elimina siempre,
	// también en los caminos de error.
	tmpPath := filepath.Join(h.uploadDir, fmt.Sprintf("upload_%s.xlsx", uuid.New().String()))
	if err := c.SaveFile(fileHeader, tmpPath); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo guardar el archivo subido"})
	}
	defer os.Remove(tmpPath)

	data, err := os.ReadFile(tmpPath)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo leer el archivo subido"})
	}

	report, err := h.importUC.ImportFile(c.Context(), campusID, GetUsername(c), data)
	if err != nil {
		var unsupported *excel.UnsupportedFileFormatError
		if errors.As(err, &unsupported) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNSUPPORTED_FILE", Message: unsupported.Error()})
		}
		var missing *excel.MissingRequiredColumnError
		if errors.As(err, &missing) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_COLUMNS", Message: missing.Error()})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "campus no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(report)
}

// ExportCampus godoc
// @Summary      Descargar el stock de un campus como xlsx
// @Tags         excel
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        id  path  string  true  "ID del campus"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/campuses/{id}/stocks/export [get]
func (h *ExcelHandler) ExportCampus(c *fiber.Ctx) error {
	filename, data, err := h.exportUC.ExportCampus(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "campus no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return sendXLSX(c, filename, data)
}

// ExportAll godoc
// @Summary      Descargar el stock de todos los campus (una hoja por campus)
// @Tags         excel
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stocks/export [get]
func (h *ExcelHandler) ExportAll(c *fiber.Ctx) error {
	data, err := h.exportUC.ExportAll(c.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "no hay campus registrados"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return sendXLSX(c, "stock_todos_los_campus.xlsx", data)
}

// Template godoc
// @Summary      Descargar la planilla vacía con el formato de importación
// @Tags         excel
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /api/stocks/template [get]
func (h *ExcelHandler) Template(c *fiber.Ctx) error {
	data, err := h.exportUC.Template()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return sendXLSX(c, "plantilla_stock.xlsx", data)
}

func sendXLSX(c *fiber.Ctx, filename string, data []byte) error {
	c.Set(fiber.HeaderContentType, contentTypeXLSX)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(data)
}
