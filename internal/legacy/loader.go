package legacy

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"
	"go.uber.org/zap"
)

// File names expected in a module directory.
const (
	DataSchemaFile = "data_schema.xml"
	UISchemaFile   = "ui_schema.xml"
)

// Source is a parsed module directory.
type Source struct {
	Dir  string
	Data *DataSchema
	UI   *UISchema
}

// LoadDir reads and parses both schema files from dir. A missing file is a
// precondition failure.
func LoadDir(dir string, logger *zap.Logger) (*Source, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	dataBytes, err := readModuleFile(dir, DataSchemaFile)
	if err != nil {
		return nil, err
	}

	uiBytes, err := readModuleFile(dir, UISchemaFile)
	if err != nil {
		return nil, err
	}

	data, err := ParseDataSchema(dataBytes)
	if err != nil {
		return nil, err
	}

	ui, err := ParseUISchema(uiBytes)
	if err != nil {
		return nil, err
	}

	logger.Info("loaded module",
		zap.String("dir", dir),
		zap.Int("entities", len(data.Order)),
		zap.Int("tab_groups", len(ui.TabGroups)))

	if ce := logger.Check(zap.DebugLevel, "parsed data schema"); ce != nil {
		ce.Write(zap.String("dump", spew.Sdump(data)))
	}

	if ce := logger.Check(zap.DebugLevel, "parsed ui schema"); ce != nil {
		ce.Write(zap.String("dump", spew.Sdump(ui)))
	}

	return &Source{Dir: dir, Data: data, UI: ui}, nil
}

func readModuleFile(dir, name string) ([]byte, error) {
	path := filepath.Join(dir, name)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return data, nil
}
