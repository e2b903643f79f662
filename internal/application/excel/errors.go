package excel

import (
	"fmt"
	"strings"
)

// MissingRequiredColumnError error fatal: el header no contiene alguna de las
// columnas requeridas. Se detecta antes de procesar cualquier fila.
type MissingRequiredColumnError struct {
	Columns []string
}

func (e *MissingRequiredColumnError) Error() string {
	return "columnas requeridas ausentes: " + strings.Join(e.Columns, ", ")
}

// UnsupportedFileFormatError error fatal: el archivo no puede abrirse como planilla.
type UnsupportedFileFormatError struct {
	Err error
}

func (e *UnsupportedFileFormatError) Error() string {
	return fmt.Sprintf("el archivo no es una planilla válida: %v", e.Err)
}

func (e *UnsupportedFileFormatError) Unwrap() error { return e.Err }
