package manifest

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/gorewood/autotag/internal/logging"
	"github.com/gorewood/autotag/pkg/dispatch"
)

// Source is the content of one manifest file.
type Source struct {
	Path string
	Data []byte
}

// versionAssignment matches version = "..." at the start of a line.
var versionAssignment = regexp.MustCompile(`(?m)^[ \t]*version[ \t]*=[ \t]*"([^"]+)"`)

// Reader extracts versions from manifests.
type Reader struct {
	parsers *dispatch.Dispatcher[Format, Source, string]
	log     *zap.Logger
}

// NewReader creates a reader with a parser for every known format.
func NewReader(log *zap.Logger) *Reader {
	r := &Reader{
		parsers: dispatch.New(scanVersion),
		log:     logging.OrNop(log),
	}
	r.parsers.Register(FormatPyproject)(r.parsePyproject)
	r.parsers.Register(FormatCargo)(parseCargo)
	r.parsers.Register(FormatNPM)(parsePackageJSON)
	r.parsers.Register(FormatYAML)(parseYAML)
	r.parsers.Register(FormatPlain)(parsePlain)
	return r
}

// Formats returns the formats with a dedicated parser, in registration order.
// Every other format is handled by the regex scan.
func (r *Reader) Formats() []Format {
	return r.parsers.Keys()
}

// Read returns the version held by the manifest at path. An empty format is
// detected from the file name.
func (r *Reader) Read(path string, format Format) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrManifestNotFound, path)
		}
		return "", fmt.Errorf("reading manifest %s: %w", path, err)
	}

	if format == "" {
		format = DetectFormat(path)
	}
	r.log.Debug("reading manifest", zap.String("path", path), zap.String("format", string(format)))

	return r.Parse(Source{Path: path, Data: data}, format)
}

// Parse extracts the version from already-loaded manifest content.
func (r *Reader) Parse(src Source, format Format) (string, error) {
	return r.parsers.Dispatch(format, src)
}

// scanVersion is the fallback parser: exactly one version = "..." line.
func scanVersion(_ Format, src Source) (string, error) {
	matches := versionAssignment.FindAllSubmatch(src.Data, -1)
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w in %s", ErrNoVersion, src.Path)
	case 1:
		return string(matches[0][1]), nil
	default:
		return "", fmt.Errorf("%w in %s (%d matches)", ErrAmbiguousVersion, src.Path, len(matches))
	}
}

type pyprojectFile struct {
	Project struct {
		Version string `toml:"version"`
	} `toml:"project"`
	Tool struct {
		Poetry struct {
			Version string `toml:"version"`
		} `toml:"poetry"`
	} `toml:"tool"`
}

func (r *Reader) parsePyproject(src Source) (string, error) {
	var doc pyprojectFile
	if err := toml.Unmarshal(src.Data, &doc); err != nil {
		return "", fmt.Errorf("parsing %s: %w", src.Path, err)
	}
	if doc.Project.Version != "" {
		return doc.Project.Version, nil
	}
	if doc.Tool.Poetry.Version != "" {
		return doc.Tool.Poetry.Version, nil
	}
	r.log.Debug("no [project] or [tool.poetry] version, scanning", zap.String("path", src.Path))
	return r.parsers.Dispatch(FormatRegex, src)
}

func parseCargo(src Source) (string, error) {
	var doc map[string]any
	if err := toml.Unmarshal(src.Data, &doc); err != nil {
		return "", fmt.Errorf("parsing %s: %w", src.Path, err)
	}
	if version, ok := stringAt(doc, "package", "version"); ok {
		return version, nil
	}
	if version, ok := stringAt(doc, "workspace", "package", "version"); ok {
		return version, nil
	}
	return "", fmt.Errorf("%w in %s", ErrNoVersion, src.Path)
}

// stringAt walks nested tables and returns the string at the final key.
func stringAt(doc map[string]any, keys ...string) (string, bool) {
	var current any = doc
	for _, key := range keys {
		table, ok := current.(map[string]any)
		if !ok {
			return "", false
		}
		current = table[key]
	}
	value, ok := current.(string)
	return value, ok && value != ""
}

func parsePackageJSON(src Source) (string, error) {
	if !gjson.ValidBytes(src.Data) {
		return "", fmt.Errorf("parsing %s: invalid JSON", src.Path)
	}
	version := gjson.GetBytes(src.Data, "version")
	if version.Type != gjson.String || version.Str == "" {
		return "", fmt.Errorf("%w in %s", ErrNoVersion, src.Path)
	}
	return version.Str, nil
}

func parseYAML(src Source) (string, error) {
	var doc struct {
		Version yaml.Node `yaml:"version"`
	}
	if err := yaml.Unmarshal(src.Data, &doc); err != nil {
		return "", fmt.Errorf("parsing %s: %w", src.Path, err)
	}
	if doc.Version.Kind != yaml.ScalarNode || doc.Version.Value == "" {
		return "", fmt.Errorf("%w in %s", ErrNoVersion, src.Path)
	}
	// null and booleans resolve to non-version tags.
	switch doc.Version.ShortTag() {
	case "!!str", "!!int", "!!float":
		return doc.Version.Value, nil
	}
	return "", fmt.Errorf("%w in %s (version is %s)", ErrNoVersion, src.Path, doc.Version.ShortTag())
}

func parsePlain(src Source) (string, error) {
	for line := range strings.SplitSeq(string(src.Data), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line, nil
		}
	}
	return "", fmt.Errorf("%w in %s", ErrNoVersion, src.Path)
}
