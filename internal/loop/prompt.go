package loop

// Prompter is a core.Prompter whose answer comes from another goroutine.
// Confirm runs on the runner goroutine and blocks it until Answer is called
// or done closes, which answers "no".
type Prompter struct {
	ask     func(message string)
	answers chan bool
	done    <-chan struct{}
}

// NewPrompter creates a prompter. ask is called, on the runner goroutine,
// each time a question needs showing; it must not block.
func NewPrompter(done <-chan struct{}, ask func(message string)) *Prompter {
	return &Prompter{
		ask:     ask,
		answers: make(chan bool, 1),
		done:    done,
	}
}

// Confirm implements core.Prompter.
func (p *Prompter) Confirm(message string) bool {
	// Drop an answer nobody asked for
	select {
	case <-p.answers:
	default:
	}

	if p.ask != nil {
		p.ask(message)
	}

	select {
	case yes := <-p.answers:
		return yes
	case <-p.done:
		return false
	}
}

// Answer delivers the player's reply. Extra answers are dropped.
func (p *Prompter) Answer(yes bool) {
	select {
	case p.answers <- yes:
	default:
	}
}
