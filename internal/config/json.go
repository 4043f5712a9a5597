package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// StructuredJSONConfig mirrors [StructuredConfig] with json tags for the
// optional configuration file.
type StructuredJSONConfig struct {
	Share struct {
		Vault     string   `json:"vault"`
		ExpiresIn string   `json:"expires_in"`
		Emails    []string `json:"emails"`
	} `json:"share,omitempty"`

	Op struct {
		Binary       string `json:"binary"`
		TemplateKind string `json:"template_kind"`
	} `json:"op,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Share: Share{
			Vault:     jsonCfg.Share.Vault,
			ExpiresIn: jsonCfg.Share.ExpiresIn,
			Emails:    jsonCfg.Share.Emails,
		},
		Op: Op{
			Binary:       jsonCfg.Op.Binary,
			TemplateKind: jsonCfg.Op.TemplateKind,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}
