package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	apiconfig "startup_valuation/pkg/api/config"
	apivaluation "startup_valuation/pkg/api/valuation"
	"startup_valuation/pkg/core/memo"
	"startup_valuation/pkg/core/region"
	"startup_valuation/pkg/core/store"
	"startup_valuation/pkg/core/valuation"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// AppConfig is the optional YAML server configuration. Every field has a
// working default, so a missing file is fine.
type AppConfig struct {
	Port         int    `yaml:"port"`
	RegionFile   string `yaml:"region_file"`
	RegionURL    string `yaml:"region_url"`
	MemoProvider string `yaml:"memo_provider"`
}

func main() {
	// Load environment variables
	godotenv.Load()

	// Load server config (optional)
	cfg := AppConfig{
		Port:       8080,
		RegionFile: "data/region_risk.json",
	}
	if configData, err := os.ReadFile("config/valuation.yaml"); err == nil {
		if err := yaml.Unmarshal(configData, &cfg); err != nil {
			fmt.Printf("[WARNING] Failed to parse config/valuation.yaml: %v\n", err)
		}
	}

	ctx := context.Background()

	// Optional Postgres region source
	useDB := false
	if os.Getenv("DATABASE_URL") != "" {
		if err := store.InitDB(ctx); err != nil {
			fmt.Printf("[WARNING] Database init failed, skipping DB region source: %v\n", err)
		} else {
			useDB = true
			defer store.Close()
		}
	}

	// Region risk table: loaded once here, read-only afterwards. Load
	// never fails; it falls back to the compiled-in defaults.
	regions := region.Load(ctx, region.LoadConfig{
		FilePath:  cfg.RegionFile,
		SourceURL: cfg.RegionURL,
		UseDB:     useDB,
	})

	engine := valuation.NewEngine(regions)
	fmt.Printf("[ENGINE] Registered stages: %v\n", engine.Stages())

	// Memo generation
	memoMgr := memo.NewManager(cfg.MemoProvider)
	generator := memo.NewGenerator(memoMgr)

	// Valuation endpoints
	valuationHandler := apivaluation.NewHandler(engine, generator)
	http.HandleFunc("/api/valuation/calculate", valuationHandler.HandleCalculate)
	http.HandleFunc("/api/valuation/validate", valuationHandler.HandleValidate)
	http.HandleFunc("/api/valuation/fields", valuationHandler.HandleFields)
	http.HandleFunc("/api/valuation/stages", valuationHandler.HandleStages)
	http.HandleFunc("/api/valuation/memo", valuationHandler.HandleMemo)

	// Config endpoints
	configHandler := apiconfig.NewHandler(memoMgr)
	http.HandleFunc("/api/config", configHandler.HandleConfig)
	http.HandleFunc("/api/config/switch", configHandler.HandleSwitch)

	addr := fmt.Sprintf(":%d", cfg.Port)
	fmt.Printf("API server starting on %s...\n", addr)
	fmt.Println("  - POST /api/valuation/calculate")
	fmt.Println("  - POST /api/valuation/validate")
	fmt.Println("  - GET  /api/valuation/fields?stage=")
	fmt.Println("  - GET  /api/valuation/stages")
	fmt.Println("  - POST /api/valuation/memo")
	fmt.Println("  - GET  /api/config")
	fmt.Println("  - POST /api/config/switch")

	if err := http.ListenAndServe(addr, nil); err != nil {
		fmt.Printf("[FATAL] Server failed to start: %v\n", err)
		os.Exit(1)
	}
}
