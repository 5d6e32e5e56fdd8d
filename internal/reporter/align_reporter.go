package reporter

import (
	"fmt"
	"io"

	"github.com/graalign/graalign/domain"
)

// AlignReporter renders a domain.AlignResponse in one of domain.OutputFormat.
type AlignReporter struct{}

// NewAlignReporter builds an AlignReporter.
func NewAlignReporter() *AlignReporter {
	return &AlignReporter{}
}

// Write renders resp in format to w.
func (r *AlignReporter) Write(resp *domain.AlignResponse, format domain.OutputFormat, w io.Writer) error {
	switch format {
	case domain.OutputFormatJSON:
		return WriteJSON(w, resp)
	case domain.OutputFormatYAML:
		return WriteYAML(w, resp)
	case domain.OutputFormatText, "":
		return r.writeText(resp, w)
	default:
		return domain.NewUnsupportedFormatError(format)
	}
}

func (r *AlignReporter) writeText(resp *domain.AlignResponse, w io.Writer) error {
	for i, res := range resp.Results {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "Alignment: %s vs %s\n", res.OriginalPath, res.SuspectPath)
		fmt.Fprintf(w, "  Seeds found:      %d\n", res.SeedCount)
		fmt.Fprintf(w, "  Alignments found: %d\n", res.AlignmentCount)
		if len(res.BestAlignment) == 0 {
			fmt.Fprintf(w, "  Best alignment:   none (no alignable seed)\n")
			continue
		}
		fmt.Fprintf(w, "  Best alignment:   %d matched pairs\n", len(res.BestAlignment))
		for _, pair := range res.BestAlignment {
			fmt.Fprintf(w, "    %s <-> %s (cost %.4f)\n", pair.OriginalID, pair.SuspectID, pair.Cost)
		}
	}
	return nil
}
