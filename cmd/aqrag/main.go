package main

import (
	"flag"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"aqrag/internal/chunker"
	"aqrag/internal/config"
	"aqrag/internal/dataclients"
	"aqrag/internal/embedding/hashing"
	"aqrag/internal/retrieval"
	"aqrag/internal/snapshot"
	"aqrag/internal/store"
	"aqrag/internal/tui"
)

func main() {
	_ = godotenv.Load()

	var cfgPath string
	var refresh bool
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/aqrag/config.yaml if not provided)")
	flag.BoolVar(&refresh, "refresh", false, "Re-ingest catalog documents even when a snapshot was restored (accumulates duplicates)")
	flag.Parse()

	var cfg *config.AppConfig
	var err error
	if cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	emb := hashing.NewEmbedder(cfg.Embedder.Dimension)
	ch := chunker.NewWindowChunker(cfg.Chunker.ChunkSize, cfg.Chunker.Overlap)
	snapshots := snapshot.NewFileStore(cfg.Storage.DataDir)

	st := store.New(emb, ch, snapshots)
	if err := st.Initialize(); err != nil {
		log.Fatalf("failed to initialize store: %v", err)
	}

	if st.Count() == 0 || refresh {
		for _, client := range dataclients.All() {
			docs := client.InitialDocuments()
			if err := st.AddDocuments(docs); err != nil {
				log.Printf("ingest from %s failed: %v", client.Name(), err)
				continue
			}
			log.Printf("ingested %d documents from %s", len(docs), client.Name())
		}
	}

	retriever := retrieval.New(st, cfg.Retrieval.TopK)

	m := tui.New(retriever, st.Count())
	if _, err := tea.NewProgram(m).Run(); err != nil {
		log.Fatal(err)
	}
}
