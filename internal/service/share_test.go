// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-note-share/internal/clipboard"
	"github.com/MKhiriev/go-note-share/internal/config"
	"github.com/MKhiriev/go-note-share/internal/logger"
	"github.com/MKhiriev/go-note-share/internal/op"
	"github.com/MKhiriev/go-note-share/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTemplateJSON = `{
	"title": "",
	"category": "SECURE_NOTE",
	"fields": [
		{"id": "notesPlain", "type": "STRING", "purpose": "NOTES", "label": "notesPlain", "value": ""}
	]
}`

// fakeOpClient is a hand-written stub of the OpClient interface. It records
// the order of invocations and, for CreateItem, snapshots the template file
// content at call time (the file is removed once the run finishes).
type fakeOpClient struct {
	calls []string

	sessionErr     error
	vaultExists    bool
	vaultErr       error
	createVaultErr error
	template       string
	templateErr    error
	createResp     string
	createErr      error
	shareLink      string
	shareErr       error

	createParams     op.ItemCreateParams
	templateContents []byte
	shareReq         models.ShareRequest
}

func (f *fakeOpClient) CheckSession(_ context.Context) error {
	f.calls = append(f.calls, "account list")
	return f.sessionErr
}

func (f *fakeOpClient) VaultExists(_ context.Context, name string) (bool, error) {
	f.calls = append(f.calls, "vault get "+name)
	return f.vaultExists, f.vaultErr
}

func (f *fakeOpClient) CreateVault(_ context.Context, name string) error {
	f.calls = append(f.calls, "vault create "+name)
	return f.createVaultErr
}

func (f *fakeOpClient) GetTemplate(_ context.Context, kind string) ([]byte, error) {
	f.calls = append(f.calls, "item template get "+kind)
	if f.templateErr != nil {
		return nil, f.templateErr
	}
	return []byte(f.template), nil
}

func (f *fakeOpClient) CreateItem(_ context.Context, params op.ItemCreateParams) ([]byte, error) {
	f.calls = append(f.calls, "item create")
	f.createParams = params
	f.templateContents, _ = os.ReadFile(params.TemplatePath)
	if f.createErr != nil {
		return nil, f.createErr
	}
	return []byte(f.createResp), nil
}

func (f *fakeOpClient) ShareItem(_ context.Context, req models.ShareRequest) (string, error) {
	f.calls = append(f.calls, "item share "+req.ItemID)
	f.shareReq = req
	return f.shareLink, f.shareErr
}

type testPipeline struct {
	svc       *ShareNoteService
	op        *fakeOpClient
	out       *bytes.Buffer
	errOut    *bytes.Buffer
	clipboard *string
}

// newTestPipeline builds a ShareNoteService around a fully successful fake
// op client; individual tests break specific steps.
func newTestPipeline(t *testing.T, input string) *testPipeline {
	t.Helper()

	fake := &fakeOpClient{
		vaultExists: true,
		template:    testTemplateJSON,
		createResp:  `{"id": "abc123"}`,
		shareLink:   "https://share.1password.com/s#token\n",
	}

	cfg := &config.StructuredConfig{
		Share: config.Share{
			Vault:     config.DefaultVault,
			ExpiresIn: config.DefaultExpiresIn,
		},
		Op: config.Op{
			Binary:       config.DefaultOpBinary,
			TemplateKind: config.DefaultTemplateKind,
		},
	}

	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	copied := ""
	clip := clipboard.WriterFunc(func(text string) error {
		copied = text
		return nil
	})

	env := RunEnv{
		In:      strings.NewReader(input),
		Out:     out,
		ErrOut:  errOut,
		WorkDir: "/home/dev/my-project",
		Now:     func() time.Time { return time.Date(2026, time.December, 31, 12, 0, 0, 0, time.UTC) },
	}

	return &testPipeline{
		svc:       NewShareNoteService(cfg, fake, clip, env, logger.Nop()),
		op:        fake,
		out:       out,
		errOut:    errOut,
		clipboard: &copied,
	}
}

// TestRun_EmptyInput verifies that empty or whitespace-only input ends the
// run with a usage hint before any external call.
func TestRun_EmptyInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "whitespace only", input: "  \n\t\n  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPipeline(t, tt.input)

			require.NoError(t, p.svc.Run(context.Background()))

			assert.Empty(t, p.op.calls, "no external call may happen")
			assert.Contains(t, p.errOut.String(), "No input text provided")
			assert.Contains(t, p.errOut.String(), "Usage example")
			assert.Empty(t, p.out.String())
		})
	}
}

// TestRun_NotSignedIn verifies that a failed session check stops the
// pipeline before any further external call.
func TestRun_NotSignedIn(t *testing.T) {
	p := newTestPipeline(t, "API_KEY=123")
	p.op.sessionErr = op.ErrNotSignedIn

	require.NoError(t, p.svc.Run(context.Background()))

	assert.Equal(t, []string{"account list"}, p.op.calls)
	assert.Contains(t, p.errOut.String(), "not signed in")
}

// TestRun_SessionLaunchFailure verifies that not being able to launch op at
// all is unrecoverable.
func TestRun_SessionLaunchFailure(t *testing.T) {
	p := newTestPipeline(t, "API_KEY=123")
	p.op.sessionErr = errors.New("launch op: executable file not found in $PATH")

	err := p.svc.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "check op session")
}

// TestRun_VaultCreatedWhenMissing verifies the vault-absent branch.
func TestRun_VaultCreatedWhenMissing(t *testing.T) {
	p := newTestPipeline(t, "API_KEY=123")
	p.op.vaultExists = false

	require.NoError(t, p.svc.Run(context.Background()))

	assert.Contains(t, p.op.calls, "vault create Shared Notes")
	assert.Contains(t, p.out.String(), "Vault 'Shared Notes' does not exist, creating it...")
}

// TestRun_VaultCreateFailure verifies that the CLI's stderr is relayed and
// the pipeline stops cleanly.
func TestRun_VaultCreateFailure(t *testing.T) {
	p := newTestPipeline(t, "API_KEY=123")
	p.op.vaultExists = false
	p.op.createVaultErr = &op.CLIError{
		Args:     []string{"vault", "create", "Shared Notes"},
		ExitCode: 1,
		Stderr:   "[ERROR] not allowed to create vaults",
	}

	require.NoError(t, p.svc.Run(context.Background()))

	assert.Contains(t, p.errOut.String(), "Error creating vault 'Shared Notes'.")
	assert.Contains(t, p.errOut.String(), "not allowed to create vaults")
	assert.NotContains(t, p.op.calls, "item template get Secure Note")
}

// TestRun_TemplateFetchFailure verifies the template fetch soft-failure
// branch.
func TestRun_TemplateFetchFailure(t *testing.T) {
	p := newTestPipeline(t, "API_KEY=123")
	p.op.templateErr = &op.CLIError{ExitCode: 1, Stderr: "unknown template"}

	require.NoError(t, p.svc.Run(context.Background()))

	assert.Contains(t, p.errOut.String(), "Error getting Secure Note template.")
	assert.NotContains(t, p.op.calls, "item create")
}

// TestRun_TemplateMalformedJSON verifies that a non-JSON template response
// is unrecoverable.
func TestRun_TemplateMalformedJSON(t *testing.T) {
	p := newTestPipeline(t, "API_KEY=123")
	p.op.template = "not json"

	err := p.svc.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode Secure Note template")
}

// TestRun_Success covers the full happy path end to end.
func TestRun_Success(t *testing.T) {
	p := newTestPipeline(t, "API_KEY=123")

	require.NoError(t, p.svc.Run(context.Background()))

	assert.Equal(t, []string{
		"account list",
		"vault get Shared Notes",
		"item template get Secure Note",
		"item create",
		"item share abc123",
	}, p.op.calls)

	// Title: cwd basename plus local date.
	assert.Equal(t, "[my-project] - 31.12.2026", p.op.createParams.Title)
	assert.Equal(t, "Shared Notes", p.op.createParams.Vault)

	// The published template holds the round-tripped secret with the
	// trailing newline added by the secret temp file.
	var published models.NoteTemplate
	require.NoError(t, json.Unmarshal(p.op.templateContents, &published))
	fields := published["fields"].([]any)
	notes := fields[0].(map[string]any)
	assert.Equal(t, "API_KEY=123\n", notes["value"])
	assert.Equal(t, "SECURE_NOTE", published["category"], "rest of the template is untouched")

	// The share call carries the configured expiration and no recipients.
	assert.Equal(t, models.ShareRequest{
		ItemID:    "abc123",
		Vault:     "Shared Notes",
		ExpiresIn: "7d",
	}, p.op.shareReq)

	// The link lands on the clipboard and on stdout, verbatim.
	assert.Equal(t, "https://share.1password.com/s#token\n", *p.clipboard)
	assert.Contains(t, p.out.String(), "Link copied to clipboard:")
	assert.Contains(t, p.out.String(), "https://share.1password.com/s#token")

	// Scoped temp files are gone once the run is over.
	_, err := os.Stat(p.op.createParams.TemplatePath)
	assert.True(t, os.IsNotExist(err), "template temp file must be removed")
}

// TestRun_RecipientOrderPreserved verifies that configured emails reach the
// share call unchanged and in order.
func TestRun_RecipientOrderPreserved(t *testing.T) {
	p := newTestPipeline(t, "API_KEY=123")
	p.svc.share.Emails = []string{"a@x.com", "b@y.com"}

	require.NoError(t, p.svc.Run(context.Background()))

	assert.Equal(t, []string{"a@x.com", "b@y.com"}, p.op.shareReq.Emails)
}

// TestRun_TemplateWithoutNotesField verifies the documented silent no-op:
// the published document equals the fetched template.
func TestRun_TemplateWithoutNotesField(t *testing.T) {
	p := newTestPipeline(t, "API_KEY=123")
	p.op.template = `{"category": "SECURE_NOTE", "fields": [{"id": "username", "value": "admin"}]}`

	require.NoError(t, p.svc.Run(context.Background()))

	var fetched, published models.NoteTemplate
	require.NoError(t, json.Unmarshal([]byte(p.op.template), &fetched))
	require.NoError(t, json.Unmarshal(p.op.templateContents, &published))
	assert.Equal(t, fetched, published)
}

// TestRun_TemplateNotAnObject verifies that a template of an unexpected
// JSON shape is published as-is rather than rejected.
func TestRun_TemplateNotAnObject(t *testing.T) {
	p := newTestPipeline(t, "API_KEY=123")
	p.op.template = `[{"id": "notesPlain"}]`

	require.NoError(t, p.svc.Run(context.Background()))

	var fetched, published any
	require.NoError(t, json.Unmarshal([]byte(p.op.template), &fetched))
	require.NoError(t, json.Unmarshal(p.op.templateContents, &published))
	assert.Equal(t, fetched, published)
	assert.Contains(t, p.op.calls, "item share abc123")
}

// TestRun_MissingItemID verifies the empty-identifier branch, which is
// distinct from an exit-status failure.
func TestRun_MissingItemID(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{name: "no id keys", response: `{"title": "note"}`},
		{name: "non-string id", response: `{"id": 42}`},
		{name: "non-object response", response: `[{"id": "abc123"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPipeline(t, "API_KEY=123")
			p.op.createResp = tt.response

			require.NoError(t, p.svc.Run(context.Background()))

			assert.Contains(t, p.errOut.String(), "Failed to get item ID.")
			assert.NotContains(t, p.op.calls, "item share abc123")
			assert.Empty(t, *p.clipboard)
		})
	}
}

// TestRun_ItemCreateMalformedJSON verifies that a non-JSON create response
// is unrecoverable.
func TestRun_ItemCreateMalformedJSON(t *testing.T) {
	p := newTestPipeline(t, "API_KEY=123")
	p.op.createResp = "garbage"

	err := p.svc.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode item create response")
}

// TestRun_ItemCreateFailure verifies the item-creation soft failure.
func TestRun_ItemCreateFailure(t *testing.T) {
	p := newTestPipeline(t, "API_KEY=123")
	p.op.createErr = &op.CLIError{ExitCode: 1, Stderr: "[ERROR] vault is read-only"}

	require.NoError(t, p.svc.Run(context.Background()))

	assert.Contains(t, p.errOut.String(), "Error creating the item in 1Password.")
	assert.Contains(t, p.errOut.String(), "vault is read-only")
	assert.Empty(t, *p.clipboard)
}

// TestRun_ShareFailure verifies the share soft failure: diagnostic printed,
// clipboard untouched, orphaned item left behind by design.
func TestRun_ShareFailure(t *testing.T) {
	p := newTestPipeline(t, "API_KEY=123")
	p.op.shareErr = &op.CLIError{ExitCode: 1, Stderr: "sharing disabled by policy"}

	require.NoError(t, p.svc.Run(context.Background()))

	assert.Contains(t, p.errOut.String(), "Error sharing the item.")
	assert.Contains(t, p.errOut.String(), "sharing disabled by policy")
	assert.Empty(t, *p.clipboard)
	assert.Empty(t, p.out.String())
}

// TestRun_ClipboardFailure verifies that a clipboard write failure is
// unrecoverable.
func TestRun_ClipboardFailure(t *testing.T) {
	p := newTestPipeline(t, "API_KEY=123")
	p.svc.clipboard = clipboard.WriterFunc(func(string) error {
		return errors.New("no display")
	})

	err := p.svc.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "copy share link to clipboard")
	assert.NotContains(t, p.out.String(), "Link copied to clipboard:")
}
