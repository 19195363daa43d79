package notebook

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"schema-migrator/internal/diagnostic"
	"schema-migrator/internal/document"
	"schema-migrator/internal/naming"
	"schema-migrator/internal/rename"
)

const filePerm = 0o644

// Options configures a migration.
type Options struct {
	// ReservedPrefix marks fields whose ids are kept verbatim.
	ReservedPrefix string
	// NotebookVersion and SchemaVersion are stamped into the metadata.
	NotebookVersion string
	SchemaVersion   string
	// TablePath is where the rename table is written.
	TablePath string
	// BackupSuffix is appended to the input path to form the backup path.
	BackupSuffix string
}

// DefaultOptions returns the default migration options.
func DefaultOptions() Options {
	return Options{
		ReservedPrefix:  rename.DefaultReservedPrefix,
		NotebookVersion: "1.0",
		SchemaVersion:   "1.0",
		TablePath:       rename.DefaultTablePath,
		BackupSuffix:    ".bak",
	}
}

// Result is a migration computed in memory, ready to be committed.
type Result struct {
	// Source is the input path; the document replaces it on commit.
	Source string
	// Name is the display name given to the notebook.
	Name string
	// Document is the encoded combined notebook document.
	Document []byte
	// Table holds the field renames.
	Table *rename.Table
	// Described lists the views that received a section description.
	Described []string
	// Diagnostics collects non-fatal problems.
	Diagnostics diagnostic.Diagnostics
}

// Migrator converts legacy notebook dumps.
type Migrator struct {
	opts    Options
	logger  *zap.Logger
	renamer *rename.Renamer
}

// NewMigrator creates a Migrator. A nil logger discards output.
func NewMigrator(opts Options, logger *zap.Logger) *Migrator {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Migrator{
		opts:    opts,
		logger:  logger,
		renamer: rename.NewRenamer(opts.ReservedPrefix, logger),
	}
}

// Run migrates the dump at path and replaces it with the combined document.
func (m *Migrator) Run(path string) (*Result, error) {
	res, err := m.Plan(path)
	if err != nil {
		return nil, err
	}

	res.Diagnostics.Log(m.logger)

	if err := m.Commit(res); err != nil {
		return nil, err
	}

	return res, nil
}

// Plan reads the dump at path and computes the migration without touching
// the filesystem.
func (m *Migrator) Plan(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read notebook dump %s: %w", path, err)
	}

	res, err := m.Transform(naming.DisplayName(path), data)
	if err != nil {
		return nil, fmt.Errorf("migrating %s: %w", path, err)
	}

	res.Source = path

	return res, nil
}

// Transform migrates an encoded dump held in memory.
func (m *Migrator) Transform(name string, data []byte) (*Result, error) {
	records, err := ParseDump(data)
	if err != nil {
		return nil, err
	}

	idx := IndexRecords(records)
	m.logger.Debug("indexed records", zap.Int("records", idx.Len()))

	metadata, err := idx.Metadata()
	if err != nil {
		return nil, err
	}

	uiSpec, err := idx.UISpecification()
	if err != nil {
		return nil, err
	}

	InjectVersions(metadata, m.opts.NotebookVersion, m.opts.SchemaVersion)
	described := RelocateSectionDescriptions(metadata, uiSpec)
	metadata.Set("name", name)

	fields, ok := uiSpec.Object(fieldsKey)
	if !ok {
		fields = document.NewObject()
	}

	table, err := m.renamer.Rename(fields)
	if err != nil {
		return nil, fmt.Errorf("renaming fields: %w", err)
	}

	uiSpec, err = SubstituteInDocument(uiSpec, table)
	if err != nil {
		return nil, err
	}

	out := document.NewObject()
	out.Set(MetadataKey, metadata)
	out.Set(UISpecKey, uiSpec)

	encoded, err := document.MarshalIndent(out)
	if err != nil {
		return nil, fmt.Errorf("encoding notebook: %w", err)
	}

	m.logger.Info("migrated notebook",
		zap.String("name", name),
		zap.Int("fields", table.Len()),
		zap.Int("renamed", len(table.Changed())),
		zap.Int("described_views", len(described)))

	return &Result{
		Name:        name,
		Document:    encoded,
		Table:       table,
		Described:   described,
		Diagnostics: CheckViewReferences(uiSpec),
	}, nil
}

// Commit writes the rename table, moves the input to its backup path and
// writes the combined document in its place. The rename to the backup path
// is the commit point: a failure before it leaves the input untouched.
func (m *Migrator) Commit(res *Result) error {
	if res.Source == "" {
		return fmt.Errorf("result has no source path")
	}

	if err := rename.WriteFile(res.Table, m.opts.TablePath); err != nil {
		return err
	}

	backup := res.Source + m.opts.BackupSuffix
	if err := os.Rename(res.Source, backup); err != nil {
		return fmt.Errorf("failed to back up %s: %w", res.Source, err)
	}

	if err := os.WriteFile(res.Source, res.Document, filePerm); err != nil {
		return fmt.Errorf("failed to write %s (original kept at %s): %w", res.Source, backup, err)
	}

	m.logger.Info("wrote notebook",
		zap.String("path", res.Source),
		zap.String("backup", backup),
		zap.String("rename_table", m.opts.TablePath))

	return nil
}
