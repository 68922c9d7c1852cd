package main

import (
	"context"
	"flag"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-coach/internal/demo"
	"github.com/carson-networks/budget-coach/internal/ingest"
	"github.com/carson-networks/budget-coach/internal/storage/csvfile"
	"github.com/carson-networks/budget-coach/internal/storage/profile"
)

func main() {
	out := flag.String("out", filepath.Join("data", "demo_transactions.csv"), "CSV file to write")
	count := flag.Int("n", 100, "number of transactions")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "random seed")
	profileDir := flag.String("profile-dir", "", "if set, also save a sample profile into this data directory")
	flag.Parse()

	txs := demo.Transactions(rand.New(rand.NewPCG(*seed, *seed)), *count, time.Now())

	if err := os.MkdirAll(filepath.Dir(*out), 0o755); err != nil {
		logrus.WithError(err).Fatal("os.MkdirAll")
	}
	f, err := os.Create(*out)
	if err != nil {
		logrus.WithError(err).Fatal("os.Create")
	}
	if err := ingest.WriteCSV(f, txs); err != nil {
		logrus.WithError(err).Fatal("ingest.WriteCSV")
	}
	if err := f.Close(); err != nil {
		logrus.WithError(err).Fatal("file.Close")
	}

	if *profileDir != "" {
		store, err := csvfile.Open(*profileDir)
		if err != nil {
			logrus.WithError(err).Fatal("csvfile.Open")
		}
		p := demo.Profile()
		p.CreatedAt = time.Now().UTC()
		p.UpdatedAt = p.CreatedAt
		if err := store.Profiles().Put(context.Background(), profile.FromFinance(p)); err != nil {
			logrus.WithError(err).Fatal("Profiles.Put")
		}
	}

	logrus.WithFields(logrus.Fields{
		"file":         *out,
		"transactions": len(txs),
		"seed":         *seed,
	}).Info("Demo data written")
}
