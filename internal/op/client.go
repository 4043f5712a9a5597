// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package op

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-note-share/models"
)

// Client issues 1Password CLI commands through a CommandRunner.
type Client struct {
	binary string
	runner CommandRunner
}

// ItemCreateParams holds the arguments of a single `op item create` call.
type ItemCreateParams struct {
	// Title is the display title of the new item.
	Title string

	// Vault is the name of the vault the item is created in.
	Vault string

	// TemplatePath is the path of the JSON template file describing the
	// item fields.
	TemplatePath string
}

// NewClient returns a Client invoking the given op binary via runner.
func NewClient(binary string, runner CommandRunner) *Client {
	return &Client{
		binary: binary,
		runner: runner,
	}
}

// CheckSession verifies that the CLI has an authenticated session by
// listing accounts. Stdout is discarded; only the exit status matters.
// Returns [ErrNotSignedIn] on a non-zero exit.
func (c *Client) CheckSession(ctx context.Context) error {
	res, err := c.runner.Run(ctx, c.binary, "account", "list", "--format=json")
	if err != nil {
		return err
	}

	if res.ExitCode != 0 {
		return ErrNotSignedIn
	}

	return nil
}

// VaultExists reports whether the named vault can be fetched. Any non-zero
// exit is treated as "does not exist"; the CLI does not distinguish a
// missing vault from other lookup failures here.
func (c *Client) VaultExists(ctx context.Context, name string) (bool, error) {
	res, err := c.runner.Run(ctx, c.binary, "vault", "get", name)
	if err != nil {
		return false, err
	}

	return res.ExitCode == 0, nil
}

// CreateVault creates a vault with the given name.
func (c *Client) CreateVault(ctx context.Context, name string) error {
	args := []string{"vault", "create", name}

	res, err := c.runner.Run(ctx, c.binary, args...)
	if err != nil {
		return err
	}

	if res.ExitCode != 0 {
		return cliError(args, res)
	}

	return nil
}

// GetTemplate fetches the raw JSON item template for the given kind
// (e.g. "Secure Note").
func (c *Client) GetTemplate(ctx context.Context, kind string) ([]byte, error) {
	args := []string{"item", "template", "get", kind}

	res, err := c.runner.Run(ctx, c.binary, args...)
	if err != nil {
		return nil, err
	}

	if res.ExitCode != 0 {
		return nil, cliError(args, res)
	}

	return res.Stdout, nil
}

// CreateItem creates a new item from the template file and returns the raw
// JSON response describing the created item.
func (c *Client) CreateItem(ctx context.Context, params ItemCreateParams) ([]byte, error) {
	args := []string{
		"item", "create",
		"--title", params.Title,
		"--vault", params.Vault,
		"--template", params.TemplatePath,
		"--format=json",
	}

	res, err := c.runner.Run(ctx, c.binary, args...)
	if err != nil {
		return nil, err
	}

	if res.ExitCode != 0 {
		return nil, cliError(args, res)
	}

	return res.Stdout, nil
}

// ShareItem generates a share link for the item described by req and
// returns the CLI's raw stdout. The link text is not validated or trimmed;
// it is published exactly as op produced it.
func (c *Client) ShareItem(ctx context.Context, req models.ShareRequest) (string, error) {
	args := []string{
		"item", "share", req.ItemID,
		"--vault", req.Vault,
		"--expires-in", req.ExpiresIn,
	}
	for _, email := range req.Emails {
		args = append(args, "--emails", email)
	}

	res, err := c.runner.Run(ctx, c.binary, args...)
	if err != nil {
		return "", err
	}

	if res.ExitCode != 0 {
		return "", cliError(args, res)
	}

	return string(res.Stdout), nil
}

func cliError(args []string, res Result) error {
	return &CLIError{
		Args:     args,
		ExitCode: res.ExitCode,
		Stderr:   strings.TrimSpace(string(res.Stderr)),
	}
}
