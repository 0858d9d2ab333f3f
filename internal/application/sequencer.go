package application

type workflow uint8

const (
	workflowSession workflow = iota
	workflowFeed
	workflowOwnPosts
	workflowProfile
	workflowCompose
	workflowDelete
)

func (w workflow) String() string {
	switch w {
	case workflowSession:
		return "session"
	case workflowFeed:
		return "feed"
	case workflowOwnPosts:
		return "own_posts"
	case workflowProfile:
		return "profile"
	case workflowCompose:
		return "compose"
	case workflowDelete:
		return "delete"
	default:
		return "unknown"
	}
}

type ticket struct {
	workflow workflow
	seq      uint64
	epoch    uint64
}

// sequencer orders asynchronous responses. A ticket is current while it is
// the newest one issued for its workflow and the session epoch it was issued
// under is still in force. Callers hold the orchestrator mutex.
type sequencer struct {
	epoch  uint64
	latest map[workflow]uint64
}

func (s *sequencer) issue(w workflow) ticket {
	if s.latest == nil {
		s.latest = make(map[workflow]uint64)
	}
	s.latest[w]++

	return ticket{workflow: w, seq: s.latest[w], epoch: s.epoch}
}

func (s *sequencer) current(t ticket) bool {
	return t.epoch == s.epoch && s.latest[t.workflow] == t.seq
}

// newest ignores the epoch. Session workflows establish epochs rather than
// live inside one.
func (s *sequencer) newest(t ticket) bool {
	return s.latest[t.workflow] == t.seq
}

func (s *sequencer) sameEpoch(t ticket) bool {
	return t.epoch == s.epoch
}

func (s *sequencer) bumpEpoch() {
	s.epoch++
}
