package search

import (
	"time"

	"github.com/alekhya-chintada/skillmatrix/core"
	"github.com/alekhya-chintada/skillmatrix/match"
)

// SearchMonitor provides hooks to observe the search process.
// Implementations are shared by concurrent queries and must be thread-safe.
type SearchMonitor interface {
	Start(phrase match.Phrase)
	AfterTier(tier core.MatchType, found, added int)
	FallbackInvoked(have int)
	FallbackFailed(err error)
	Finish(ranked []core.Match, elapsed time.Duration)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ match.Phrase)                  {}
func (n *noopMonitor) AfterTier(_ core.MatchType, _, _ int)  {}
func (n *noopMonitor) FallbackInvoked(_ int)                 {}
func (n *noopMonitor) FallbackFailed(_ error)                {}
func (n *noopMonitor) Finish(_ []core.Match, _ time.Duration) {}
