// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/MKhiriev/go-note-share/internal/clipboard"
	"github.com/MKhiriev/go-note-share/internal/config"
	"github.com/MKhiriev/go-note-share/internal/logger"
	"github.com/MKhiriev/go-note-share/internal/op"
	"github.com/MKhiriev/go-note-share/internal/utils"
	"github.com/MKhiriev/go-note-share/models"
)

// RunEnv carries the ambient process state the pipeline uses: the standard
// streams, the working directory, and the clock. Passing them explicitly
// keeps every step of the pipeline testable.
type RunEnv struct {
	// In is the stream the secret text is read from (stdin in production).
	In io.Reader

	// Out receives the confirmation message and the share link.
	Out io.Writer

	// ErrOut receives user-facing diagnostics for every expected failure
	// branch.
	ErrOut io.Writer

	// WorkDir is the current working directory; its basename becomes part
	// of the item title.
	WorkDir string

	// Now supplies the local time for the item title date.
	Now func() time.Time
}

// ShareNoteService runs the note-sharing pipeline:
//
//	ReadInput → ValidateSession → ResolveVault → BuildItem → PublishItem →
//	ShareLink → PublishClipboard
//
// Every step gates the next. Expected failures print a diagnostic to ErrOut
// and end the run cleanly; unrecoverable ones (launch failure, malformed
// JSON, clipboard failure) are returned from Run as errors. No step is ever
// retried and nothing is rolled back: a failure after item creation leaves
// the created item in the vault.
type ShareNoteService struct {
	op        OpClient
	clipboard clipboard.Writer
	share     config.Share
	kind      string
	env       RunEnv
	log       *logger.Logger
}

// NewShareNoteService wires the pipeline with its collaborators.
func NewShareNoteService(cfg *config.StructuredConfig, opClient OpClient, clip clipboard.Writer, env RunEnv, log *logger.Logger) *ShareNoteService {
	return &ShareNoteService{
		op:        opClient,
		clipboard: clip,
		share:     cfg.Share,
		kind:      cfg.Op.TemplateKind,
		env:       env,
		log:       log,
	}
}

// Run executes the pipeline once. The returned error is non-nil only for
// unrecoverable conditions; expected failure branches have already been
// reported on ErrOut and yield nil.
func (s *ShareNoteService) Run(ctx context.Context) error {
	if err := s.run(ctx); err != nil {
		if errors.Is(err, errEarlyExit) {
			return nil
		}
		return err
	}

	return nil
}

func (s *ShareNoteService) run(ctx context.Context) error {
	secret, err := s.readSecret()
	if err != nil {
		return err
	}

	if err := s.validateSession(ctx); err != nil {
		return err
	}

	if err := s.resolveVault(ctx); err != nil {
		return err
	}

	templatePath, cleanup, err := s.buildItemTemplate(ctx, secret)
	if cleanup != nil {
		defer cleanup()
	}
	if err != nil {
		return err
	}

	itemID, err := s.publishItem(ctx, templatePath)
	if err != nil {
		return err
	}

	link, err := s.shareItem(ctx, itemID)
	if err != nil {
		return err
	}

	return s.publishLink(link)
}

// readSecret consumes the whole input stream. Whitespace-only input is not
// an error: the run ends with a usage hint before any external call.
func (s *ShareNoteService) readSecret() (string, error) {
	text, err := io.ReadAll(s.env.In)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}

	secret := string(text)
	if strings.TrimSpace(secret) == "" {
		fmt.Fprintln(s.env.ErrOut, "No input text provided. Please provide text via stdin.")
		fmt.Fprintln(s.env.ErrOut, "Usage example: cat .env | note-share")
		return "", errEarlyExit
	}

	return secret, nil
}

func (s *ShareNoteService) validateSession(ctx context.Context) error {
	if err := s.op.CheckSession(ctx); err != nil {
		if errors.Is(err, op.ErrNotSignedIn) {
			fmt.Fprintln(s.env.ErrOut, "1Password CLI is not signed in. Please sign in first using 'op signin'.")
			return errEarlyExit
		}
		return fmt.Errorf("check op session: %w", err)
	}

	s.log.Debug().Msg("op session validated")
	return nil
}

func (s *ShareNoteService) resolveVault(ctx context.Context) error {
	exists, err := s.op.VaultExists(ctx, s.share.Vault)
	if err != nil {
		return fmt.Errorf("check vault %q: %w", s.share.Vault, err)
	}

	if exists {
		s.log.Debug().Str("vault", s.share.Vault).Msg("vault found")
		return nil
	}

	fmt.Fprintf(s.env.Out, "Vault '%s' does not exist, creating it...\n", s.share.Vault)
	if err := s.op.CreateVault(ctx, s.share.Vault); err != nil {
		var cliErr *op.CLIError
		if errors.As(err, &cliErr) {
			fmt.Fprintf(s.env.ErrOut, "Error creating vault '%s'.\n", s.share.Vault)
			fmt.Fprintln(s.env.ErrOut, cliErr.Stderr)
			return errEarlyExit
		}
		return fmt.Errorf("create vault %q: %w", s.share.Vault, err)
	}

	s.log.Info().Str("vault", s.share.Vault).Msg("vault created")
	return nil
}

// buildItemTemplate produces the edited template file handed to
// `op item create`. The secret round-trips through a scoped temp file of
// its own before landing in the template; both files live in the OS temp
// directory and the returned cleanup removes the template file. The secret
// file is removed before returning.
func (s *ShareNoteService) buildItemTemplate(ctx context.Context, secret string) (string, func(), error) {
	secretPath, cleanupSecret, err := utils.WriteTempFile("note-share-secret-*", []byte(secret+"\n"))
	if err != nil {
		return "", nil, err
	}
	defer cleanupSecret()

	raw, err := s.op.GetTemplate(ctx, s.kind)
	if err != nil {
		var cliErr *op.CLIError
		if errors.As(err, &cliErr) {
			fmt.Fprintf(s.env.ErrOut, "Error getting %s template.\n", s.kind)
			return "", nil, errEarlyExit
		}
		return "", nil, fmt.Errorf("get %s template: %w", s.kind, err)
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return "", nil, fmt.Errorf("decode %s template: %w", s.kind, err)
	}

	content, err := os.ReadFile(secretPath)
	if err != nil {
		return "", nil, fmt.Errorf("read secret back: %w", err)
	}

	edited := doc
	if obj, ok := doc.(map[string]any); ok {
		template := models.NoteTemplate(obj).Clone()
		if !template.SetNotesPlain(string(content)) {
			// Template without a notesPlain field: published unchanged.
			s.log.Warn().Str("kind", s.kind).Msg("template has no notesPlain field")
		}
		edited = map[string]any(template)
	} else {
		// Not an object: nothing to edit, published as-is.
		s.log.Warn().Str("kind", s.kind).Msg("template is not a JSON object")
	}

	data, err := json.Marshal(edited)
	if err != nil {
		return "", nil, fmt.Errorf("encode edited template: %w", err)
	}

	templatePath, cleanupTemplate, err := utils.WriteTempFile("note-share-template-*.json", data)
	if err != nil {
		return "", nil, err
	}

	s.log.Debug().Str("template_path", templatePath).Msg("item template prepared")
	return templatePath, cleanupTemplate, nil
}

func (s *ShareNoteService) publishItem(ctx context.Context, templatePath string) (string, error) {
	title := BuildTitle(s.env.WorkDir, s.env.Now())

	raw, err := s.op.CreateItem(ctx, op.ItemCreateParams{
		Title:        title,
		Vault:        s.share.Vault,
		TemplatePath: templatePath,
	})
	if err != nil {
		var cliErr *op.CLIError
		if errors.As(err, &cliErr) {
			fmt.Fprintln(s.env.ErrOut, "Error creating the item in 1Password.")
			fmt.Fprintln(s.env.ErrOut, cliErr.Stderr)
			return "", errEarlyExit
		}
		return "", fmt.Errorf("create item: %w", err)
	}

	itemID, err := models.ItemIDFromJSON(raw)
	if err != nil {
		return "", err
	}

	// The CLI can exit zero and still return an unusable payload; an empty
	// identifier is checked separately from the exit status.
	if itemID == "" {
		fmt.Fprintln(s.env.ErrOut, "Failed to get item ID.")
		return "", errEarlyExit
	}

	s.log.Info().Str("item_id", itemID).Str("title", title).Msg("item created")
	return itemID, nil
}

func (s *ShareNoteService) shareItem(ctx context.Context, itemID string) (string, error) {
	link, err := s.op.ShareItem(ctx, models.ShareRequest{
		ItemID:    itemID,
		Vault:     s.share.Vault,
		ExpiresIn: s.share.ExpiresIn,
		Emails:    s.share.Emails,
	})
	if err != nil {
		var cliErr *op.CLIError
		if errors.As(err, &cliErr) {
			fmt.Fprintln(s.env.ErrOut, "Error sharing the item.")
			fmt.Fprintln(s.env.ErrOut, cliErr.Stderr)
			return "", errEarlyExit
		}
		return "", fmt.Errorf("share item: %w", err)
	}

	s.log.Info().Str("item_id", itemID).Str("expires_in", s.share.ExpiresIn).Msg("share link generated")
	return link, nil
}

func (s *ShareNoteService) publishLink(link string) error {
	if err := s.clipboard.WriteAll(link); err != nil {
		return fmt.Errorf("copy share link to clipboard: %w", err)
	}

	fmt.Fprintln(s.env.Out, "Link copied to clipboard:")
	fmt.Fprintln(s.env.Out, link)
	return nil
}
