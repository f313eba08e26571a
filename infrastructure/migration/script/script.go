package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/Carlos-D04/AtosCapitais2-main/infrastructure/database/postgres"
	salesapidomain "github.com/Carlos-D04/AtosCapitais2-main/infrastructure/integrator/salesapi/domain"
	"github.com/Carlos-D04/AtosCapitais2-main/internal/config"
	"github.com/Carlos-D04/AtosCapitais2-main/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const schema = `
CREATE TABLE IF NOT EXISTS branches (
	cnpj       VARCHAR(20) PRIMARY KEY,
	name       TEXT        NOT NULL,
	position   INTEGER     NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS sales (
	id          VARCHAR(12)    PRIMARY KEY,
	sale_date   DATE           NOT NULL,
	value       NUMERIC(14, 2) NOT NULL,
	branch_name TEXT           NOT NULL,
	created_at  TIMESTAMPTZ    NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS sales_sale_date_idx ON sales (sale_date);
`

func setupLogger() {
	// Configura o logger para incluir data, hora e arquivo
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("Iniciando script de migração...")
}

// loadExport lê um arquivo no mesmo formato da resposta da API de vendas
func loadExport(r io.Reader) (salesapidomain.DashboardResponse, error) {
	var export salesapidomain.DashboardResponse
	if err := json.NewDecoder(r).Decode(&export); err != nil {
		return export, fmt.Errorf("erro ao decodificar exportação: %w", err)
	}
	return export, nil
}

func createSchema(ctx context.Context, db *sql.DB) error {
	log.Println("Criando tabelas branches e sales...")
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("erro ao criar tabelas: %w", err)
	}
	return nil
}

func insertBranches(tx *sql.Tx, branches []salesapidomain.Branch) (int, error) {
	log.Printf("Iniciando inserção de %d filiais...", len(branches))

	stmt, err := tx.Prepare(`INSERT INTO branches (cnpj, name, position) VALUES ($1, $2, $3)
		ON CONFLICT (cnpj) DO UPDATE SET name = EXCLUDED.name, position = EXCLUDED.position`)
	if err != nil {
		return 0, fmt.Errorf("erro ao preparar statement para branches: %w", err)
	}
	defer stmt.Close()

	for i, b := range branches {
		if _, err := stmt.Exec(b.CNPJ, b.Name, i); err != nil {
			return i, fmt.Errorf("erro ao inserir filial [%d/%d] %s: %w", i+1, len(branches), b.Name, err)
		}
	}

	return len(branches), nil
}

func insertSales(tx *sql.Tx, sales []salesapidomain.Sale, location *time.Location) (int, int, error) {
	log.Printf("Iniciando inserção de %d vendas...", len(sales))
	startTime := time.Now()

	stmt, err := tx.Prepare(`INSERT INTO sales (id, sale_date, value, branch_name) VALUES ($1, $2, $3, $4)`)
	if err != nil {
		return 0, 0, fmt.Errorf("erro ao preparar statement para sales: %w", err)
	}
	defer stmt.Close()

	successCount := 0
	skippedCount := 0

	for i, s := range sales {
		date, err := utils.ParseSaleDate(s.Date, location)
		if err != nil {
			log.Printf("AVISO: venda [%d/%d] ignorada: %v", i+1, len(sales), err)
			skippedCount++
			continue
		}

		id, err := utils.GenerateID()
		if err != nil {
			return successCount, skippedCount, fmt.Errorf("erro ao gerar id: %w", err)
		}

		if _, err := stmt.Exec(id, date.Format(time.DateOnly), s.Value.StringFixed(2), s.BranchName); err != nil {
			return successCount, skippedCount, fmt.Errorf("erro ao inserir venda [%d/%d]: %w", i+1, len(sales), err)
		}
		successCount++

		if i > 0 && i%1000 == 0 {
			log.Printf("Progresso: %d/%d vendas processadas", i+1, len(sales))
		}
	}

	log.Printf("Inserção de vendas concluída em %v. Sucesso: %d, Ignoradas: %d", time.Since(startTime), successCount, skippedCount)
	return successCount, skippedCount, nil
}

func main() {
	setupLogger()

	file := flag.String("file", "", "arquivo JSON exportado da API de vendas ({branchs, sales})")
	schemaOnly := flag.Bool("schema-only", false, "apenas cria as tabelas")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("ERRO ao carregar configuração: %v", err)
	}

	ctx := context.Background()

	log.Println("Conectando ao banco de dados...")
	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("ERRO ao conectar ao banco de dados: %v", err)
	}
	defer conn.Close()
	log.Println("Conexão com o banco de dados estabelecida com sucesso")

	if err := createSchema(ctx, conn.DB); err != nil {
		log.Fatalf("ERRO: %v", err)
	}

	if *schemaOnly {
		log.Println("Tabelas criadas")
		return
	}

	if *file == "" {
		log.Println("Informe -file com a exportação de vendas ou use -schema-only")
		os.Exit(2)
	}

	f, err := os.Open(*file)
	if err != nil {
		log.Fatalf("ERRO ao abrir %s: %v", *file, err)
	}
	defer f.Close()

	export, err := loadExport(f)
	if err != nil {
		log.Fatalf("ERRO: %v", err)
	}
	log.Printf("Exportação com %d filiais e %d vendas", len(export.Branches), len(export.Sales))

	startTime := time.Now()
	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := insertBranches(tx, export.Branches); err != nil {
			return err
		}
		_, _, err := insertSales(tx, export.Sales, cfg.Location)
		return err
	})
	if err != nil {
		log.Fatalf("ERRO na carga, transação revertida: %v", err)
	}

	log.Printf("Carga concluída em %v!", time.Since(startTime))
}
