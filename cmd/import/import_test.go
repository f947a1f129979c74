package importcmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImportCommand_Metadata(t *testing.T) {
	assert.Contains(t, Cmd.Use, "import")
	assert.Contains(t, Cmd.Short, "Import")
	assert.NotNil(t, Cmd.Run)
}

func TestImportCommand_Flags(t *testing.T) {
	assert.NotNil(t, Cmd.Flags().Lookup("dry-run"))
	assert.NotNil(t, Cmd.Flags().Lookup("mappings"))
}
