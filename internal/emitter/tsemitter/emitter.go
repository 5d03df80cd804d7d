// Package tsemitter renders the generated SDK as a self-contained TypeScript
// package on disk.
package tsemitter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/laurenfazah/gql2sdk/internal/gqldoc"
	"github.com/laurenfazah/gql2sdk/internal/sdkgen"
)

// Options controls how the emitter renders a project.
type Options struct {
	OutDir      string // required; target directory to write the project
	SdkName     string // display name; used in package.json and README
	PackageName string // npm package name; defaults to sanitized SdkName
	TypesModule string // module specifier for externally generated types; defaults to "./types"
	Force       bool   // overwrite existing files
	DryRun      bool   // don't write, only plan
	Verbose     bool
}

// PlannedFile describes a file the emitter intends to write.
type PlannedFile struct {
	RelPath string
	Size    int
	Mode    os.FileMode
}

// Result returns the planned files and final resolved names.
type Result struct {
	SdkName     string
	PackageName string
	Planned     []PlannedFile
}

// Emit generates the SDK from the document set and renders the TypeScript
// project around it.
func Emit(ctx context.Context, set *gqldoc.DocumentSet, cfg sdkgen.Config, opts Options) (*Result, error) {
	_ = ctx
	if set == nil {
		return nil, fmt.Errorf("tsemitter: nil document set")
	}
	if strings.TrimSpace(opts.OutDir) == "" {
		return nil, fmt.Errorf("tsemitter: OutDir is required")
	}
	sdkName := sanitizeName(opts.SdkName)
	if sdkName == "" {
		sdkName = "graphql-sdk"
	}
	packageName := strings.TrimSpace(opts.PackageName)
	if packageName == "" {
		packageName = sdkName
	}

	gen := sdkgen.Generate(set.Operations, cfg)

	files := map[string][]byte{}
	files["package.json"] = []byte(renderPackageJSON(packageName))
	files["tsconfig.json"] = []byte(renderTsconfig())
	files["README.md"] = []byte(renderReadme(sdkName, gen))
	files[filepath.Join("src", "sdk.ts")] = []byte(renderSdkTs(gen, cfg, opts.TypesModule))
	files[filepath.Join("src", "documents.ts")] = []byte(renderDocumentsTs(set))
	files[filepath.Join("src", "index.ts")] = []byte(renderIndexTs())

	// Plan in deterministic order
	rels := make([]string, 0, len(files))
	for p := range files {
		rels = append(rels, filepath.ToSlash(p))
	}
	sort.Strings(rels)

	planned := make([]PlannedFile, 0, len(rels))
	for _, rel := range rels {
		planned = append(planned, PlannedFile{RelPath: rel, Size: len(files[rel]), Mode: 0o644})
	}

	if !opts.DryRun {
		if err := writeFiles(opts.OutDir, files, opts.Force); err != nil {
			return nil, err
		}
	}

	return &Result{SdkName: sdkName, PackageName: packageName, Planned: planned}, nil
}

func writeFiles(outDir string, files map[string][]byte, force bool) error {
	abs, err := filepath.Abs(outDir)
	if err != nil {
		return fmt.Errorf("resolve out dir: %w", err)
	}
	// Pre-flight: if directory exists and not empty and not force, error.
	if st, err := os.Stat(abs); err == nil && st.IsDir() && !force {
		entries, rerr := os.ReadDir(abs)
		if rerr == nil && len(entries) > 0 {
			return fmt.Errorf("tsemitter: output directory %q is not empty (use --force to overwrite)", abs)
		}
	}
	for rel, content := range files {
		p := filepath.Join(abs, rel)
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			return fmt.Errorf("mkdir: %w", err)
		}
		// atomic write via temp file + rename
		tmp := p + ".tmp-" + time.Now().Format("20060102150405")
		if err := os.WriteFile(tmp, content, 0o644); err != nil {
			return fmt.Errorf("write temp %s: %w", rel, err)
		}
		if err := os.Rename(tmp, p); err != nil {
			_ = os.Remove(tmp)
			return fmt.Errorf("rename %s: %w", rel, err)
		}
	}
	return nil
}

func sanitizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	name = strings.ReplaceAll(name, " ", "-")
	name = strings.ReplaceAll(name, "/", "-")
	name = strings.ToLower(name)
	var b strings.Builder
	for _, r := range name {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	return strings.Trim(b.String(), "-")
}
