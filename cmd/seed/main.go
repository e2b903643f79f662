// seed genera un script SQL para poblar la tabla de campus a partir del XML
// del directorio institucional de sedes (habitualmente exportado en ISO-8859-1).
//
// Uso: go run ./cmd/seed [ruta/sedes.xml]
// Por defecto busca sedes.xml en el directorio actual.
// Escribe: internal/infrastructure/postgres/migrations/002_seed_campuses.sql
package main

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

type directorio struct {
	Sedes []sede `xml:"sede"`
}

type sede struct {
	Codigo    string `xml:"codigo,attr"`
	Nombre    string `xml:"nombre,attr"`
	Direccion string `xml:"direccion,attr"`
}

func main() {
	xmlPath := "sedes.xml"
	if len(os.Args) > 1 {
		xmlPath = os.Args[1]
	}
	f, err := os.Open(xmlPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir XML: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	var d directorio
	dec := xml.NewDecoder(f)
	dec.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		if strings.EqualFold(charset, "ISO-8859-1") || strings.EqualFold(charset, "ISO8859-1") {
			return transform.NewReader(input, charmap.ISO8859_1.NewDecoder()), nil
		}
		return input, nil
	}
	if err := dec.Decode(&d); err != nil {
		fmt.Fprintf(os.Stderr, "Decodificar XML: %v\n", err)
		os.Exit(1)
	}

	type campus struct{ code, name, address string }
	seen := make(map[string]bool)
	var campuses []campus
	for _, s := range d.Sedes {
		code := strings.ToUpper(strings.TrimSpace(s.Codigo))
		name := strings.TrimSpace(s.Nombre)
		if code == "" || name == "" || seen[code] {
			continue
		}
		seen[code] = true
		campuses = append(campuses, campus{
			code:    code,
			name:    name,
			address: strings.TrimSpace(s.Direccion),
		})
	}
	if len(campuses) == 0 {
		fmt.Fprintln(os.Stderr, "El XML no contiene sedes válidas")
		os.Exit(1)
	}

	// Orden estable por código para que el script sea reproducible
	sort.Slice(campuses, func(i, j int) bool { return campuses[i].code < campuses[j].code })

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_campuses.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Campus institucionales\n")
	out.WriteString("-- Generado desde el directorio de sedes (cmd/seed)\n\n")
	for _, c := range campuses {
		fmt.Fprintf(out, "INSERT INTO campuses (id, name, code, address)\nVALUES (gen_random_uuid(), '%s', '%s', '%s')\nON CONFLICT (code) DO UPDATE SET name = EXCLUDED.name, address = EXCLUDED.address;\n",
			escapeSQL(c.name), escapeSQL(c.code), escapeSQL(c.address))
	}

	fmt.Printf("Generado %s: %d campus\n", outPath, len(campuses))
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
