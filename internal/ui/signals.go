package ui

// signals records renderer callbacks raised while one update event is
// dispatched. The model reads and resets it around each dispatch.
type signals struct {
	days    bool
	meals   bool
	detail  bool
	err     bool
	errText string
	order   []string
}

func (s *signals) DaysChanged() {
	s.days = true
	s.order = append(s.order, "days")
}

func (s *signals) MealsChanged() {
	s.meals = true
	s.order = append(s.order, "meals")
}

func (s *signals) DetailReady() {
	s.detail = true
	s.order = append(s.order, "detail")
}

func (s *signals) Error(text string) {
	s.err = true
	s.errText = text
	s.order = append(s.order, "error")
}

func (s *signals) reset() {
	*s = signals{}
}
