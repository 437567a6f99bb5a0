package presentation

import (
	"testing"

	"github.com/vltrn/slashroute/internal/application/command"
	"github.com/vltrn/slashroute/internal/testutil"
)

func fixtureParser(t *testing.T) *command.Parser {
	t.Helper()
	return command.NewParser(testutil.NewBuilder(t).WithStandardRegistry().Catalog())
}
