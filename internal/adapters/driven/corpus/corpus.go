// Package corpus selects the right source reader for a corpus file.
package corpus

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/otzar-labs/otzar-cli/internal/adapters/driven/corpus/osis"
	"github.com/otzar-labs/otzar-cli/internal/adapters/driven/corpus/usfm"
	"github.com/otzar-labs/otzar-cli/internal/core/domain"
	"github.com/otzar-labs/otzar-cli/internal/core/ports/driven"
)

// NewReader picks a reader implementation from the file extension:
// .usfm/.sfm parse as USFM, .xml/.osis as OSIS.
func NewReader(corpus domain.Corpus, path string) (driven.CorpusReader, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".usfm", ".sfm":
		return usfm.New(corpus, path), nil
	case ".xml", ".osis":
		return osis.New(corpus, path), nil
	default:
		return nil, fmt.Errorf("%w: corpus file %s", domain.ErrUnsupportedType, path)
	}
}
