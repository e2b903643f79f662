package excel

import "github.com/jhoicas/campus-stock-api/internal/domain/entity"

// CampusStocks agrupa un campus con su stock para la exportación multi-hoja.
type CampusStocks struct {
	Campus *entity.Campus
	Stocks []*entity.Stock
}

// StockWorkbookCodec puerto del codec de planillas (implementado en
// infrastructure/excel sobre excelize). Parse devuelve una secuencia finita y
// re-generable: volver a invocar Parse sobre los mismos bytes la reinicia.
type StockWorkbookCodec interface {
	// Parse lee la primera hoja y devuelve una RawRow por fila de datos.
	// Errores fatales: *UnsupportedFileFormatError, *MissingRequiredColumnError.
	Parse(data []byte) ([]RawRow, error)
	// Render produce una hoja con el stock de un campus en el orden recibido.
	Render(campusName string, stocks []*entity.Stock) ([]byte, error)
	// RenderAll produce una hoja por campus, en el orden recibido.
	RenderAll(groups []CampusStocks) ([]byte, error)
	// RenderTemplate produce una hoja vacía con solo el header canónico.
	RenderTemplate() ([]byte, error)
}
