package graalmcp

import "github.com/graalign/graalign/graalservice"

// Dependencies bundles the shared state MCP handlers need: the alignment
// service and the store of runs completed so far in this server's lifetime.
type Dependencies struct {
	svc  *graalservice.AlignService
	runs *resultStore
}

// NewDependencies constructs a Dependencies. A nil svc falls back to
// graalservice.NewAlignService().
func NewDependencies(svc *graalservice.AlignService) *Dependencies {
	if svc == nil {
		svc = graalservice.NewAlignService()
	}
	return &Dependencies{svc: svc, runs: newResultStore()}
}
