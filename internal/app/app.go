// Package app wires the acquisition and extraction stages into the run
// pipeline behind the CLI: resolve the source, acquire the document bytes,
// extract the field map, and emit it as JSON.
package app

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/goreceipts/internal/fetch"
	"github.com/hyperifyio/goreceipts/internal/receipt"
)

// telebirrReceiptBase expands bare Telebirr receipt IDs into the public
// receipt URL.
const telebirrReceiptBase = "https://transactioninfo.ethiotelecom.et/receipt/"

// Run executes one extraction: acquire, extract, encode. Missing fields are
// not errors; only acquisition and configuration failures return non-nil.
func Run(ctx context.Context, cfg Config) error {
	src, err := receipt.ParseSource(cfg.Source)
	if err != nil {
		return err
	}

	doc, err := acquire(ctx, cfg, src)
	if err != nil {
		return fmt.Errorf("acquire document: %w", err)
	}

	res, err := receipt.Extract(src, doc)
	if err != nil {
		return err
	}

	matched := 0
	for _, v := range res {
		if v.Found {
			matched++
		}
	}
	log.Info().
		Str("source", string(src)).
		Int("matched", matched).
		Int("declared", len(res)).
		Msg("extraction complete")

	return writeResult(cfg.OutputPath, res)
}

func acquire(ctx context.Context, cfg Config, src receipt.Source) ([]byte, error) {
	loc := resolveLocation(src, cfg.Location)
	if !isURL(loc) {
		return os.ReadFile(loc)
	}
	if cfg.Insecure {
		log.Warn().Str("url", loc).Msg("TLS certificate verification disabled")
	}
	client := &fetch.Client{
		UserAgent:         cfg.UserAgent,
		MaxAttempts:       3,
		PerRequestTimeout: cfg.Timeout,
		InsecureTLS:       cfg.Insecure,
	}
	body, contentType, err := client.Get(ctx, loc)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("url", loc).Str("contentType", contentType).Int("bytes", len(body)).Msg("document acquired")
	return body, nil
}

// resolveLocation accepts either a full URL or, for Telebirr, a bare
// receipt ID that expands to the public receipt endpoint.
func resolveLocation(src receipt.Source, arg string) string {
	if src == receipt.Telebirr && !isURL(arg) && !fileExists(arg) {
		return telebirrReceiptBase + arg
	}
	return arg
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func writeResult(path string, res receipt.Result) error {
	b, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	b = append(b, '\n')
	if path == "" {
		_, err = os.Stdout.Write(b)
		return err
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return nil
}
