// seed_courts gera um script SQL para popular a tabela de referência de
// tribunais (ref_courts) a partir do CSV oficial de órgãos do CNJ.
//
// Uso: go run ./cmd/seed_courts [caminho/tribunais.csv]
// Por padrão busca tribunais.csv no diretório atual.
// Escreve: internal/infrastructure/postgres/migrations/003_seed_courts.sql
//
// O CSV do CNJ vem em ISO-8859-1 com colunas: codigo;nome;segmento;uf
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

type court struct {
	code    string
	name    string
	segment string
	uf      string
}

func main() {
	csvPath := "tribunais.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	// O CNJ publica o arquivo em ISO-8859-1, não UTF-8.
	r := csv.NewReader(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	r.Comma = ';'
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ler CSV: %v\n", err)
		os.Exit(1)
	}

	var courts []court
	for i, rec := range records {
		if i == 0 || len(rec) < 2 {
			// cabeçalho ou linha incompleta
			continue
		}
		c := court{
			code: strings.TrimSpace(rec[0]),
			name: strings.TrimSpace(rec[1]),
		}
		if c.code == "" || c.name == "" {
			continue
		}
		if len(rec) > 2 {
			c.segment = strings.TrimSpace(rec[2])
		}
		if len(rec) > 3 {
			c.uf = strings.ToUpper(strings.TrimSpace(rec[3]))
		}
		courts = append(courts, c)
	}

	// Ordenar por código para saída estável
	sort.Slice(courts, func(i, j int) bool { return courts[i].code < courts[j].code })

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "003_seed_courts.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "criar arquivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Tribunais brasileiros (código CNJ)\n")
	out.WriteString("-- Gerado a partir de tribunais.csv (CNJ)\n\n")
	out.WriteString("INSERT INTO ref_courts (code, name, segment, uf) VALUES\n")
	for i, c := range courts {
		sep := ","
		if i == len(courts)-1 {
			sep = ""
		}
		fmt.Fprintf(out, "  ('%s', '%s', '%s', '%s')%s\n",
			escapeSQL(c.code), escapeSQL(c.name), escapeSQL(c.segment), escapeSQL(c.uf), sep)
	}
	out.WriteString("ON CONFLICT (code) DO UPDATE SET name = EXCLUDED.name, segment = EXCLUDED.segment, uf = EXCLUDED.uf;\n")

	fmt.Printf("Gerado %s: %d tribunais\n", outPath, len(courts))
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
