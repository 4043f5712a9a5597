package models

// ShareRequest describes a single share-link generation call against the
// 1Password CLI.
type ShareRequest struct {
	// ItemID is the opaque identifier of the item to share.
	ItemID string

	// Vault is the name of the vault holding the item.
	Vault string

	// ExpiresIn is the link lifetime (e.g. "7d", "24h"). The value is
	// passed to the CLI verbatim; the CLI is the sole validator of its
	// format.
	ExpiresIn string

	// Emails restricts the link to the given recipients, one restriction
	// per address, in order. Empty means anyone with the link can view.
	Emails []string
}
