package aztecartifact

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

func NewContractRegistry() *ContractRegistry {
	return &ContractRegistry{
		contracts: map[string]*ContractArtifact{},
		names:     []string{},
	}
}

type ContractRegistry struct {
	contracts map[string]*ContractArtifact
	names     []string // sorted index of contract names in the map
}

// Add registers an artifact under its contract name. Adding the same document twice
// is a no-op; adding a different document under a taken name is an error.
func (c *ContractRegistry) Add(artifact *ContractArtifact) error {
	if c.contracts == nil {
		c.contracts = map[string]*ContractArtifact{}
	}
	if artifact == nil || artifact.Name == "" {
		return fmt.Errorf("aztecartifact: unable to register contract with empty name")
	}
	if existing, ok := c.contracts[artifact.Name]; ok {
		if existing.Checksum == artifact.Checksum {
			return nil
		}
		return fmt.Errorf("aztecartifact: contract %s is already registered with a different artifact", artifact.Name)
	}
	c.contracts[artifact.Name] = artifact
	c.names = append(c.names, artifact.Name)
	sort.Strings(c.names)
	return nil
}

func (c *ContractRegistry) MustAdd(artifact *ContractArtifact) {
	err := c.Add(artifact)
	if err != nil {
		panic(err)
	}
}

// LoadDir parses and registers every .json file directly under dir.
func (c *ContractRegistry) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("aztecartifact: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		artifact, err := ParseArtifactFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return err
		}
		if err := c.Add(artifact); err != nil {
			return err
		}
	}
	return nil
}

func (c *ContractRegistry) ContractNames() []string {
	return c.names
}

func (c *ContractRegistry) Get(name string) (*ContractArtifact, bool) {
	artifact, ok := c.contracts[name]
	return artifact, ok
}

func (c *ContractRegistry) MustGet(name string) *ContractArtifact {
	artifact, ok := c.Get(name)
	if !ok {
		panic(fmt.Sprintf("aztecartifact: ContractRegistry#MustGet failed to get '%s'", name))
	}
	return artifact
}
