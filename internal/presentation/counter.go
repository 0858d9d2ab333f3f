package presentation

import "fmt"

type Counter struct {
	Current int
	Max     int
	Text    string
	AtLimit bool
}

func CharCount(current, max int) Counter {
	return Counter{
		Current: current,
		Max:     max,
		Text:    fmt.Sprintf("%d / %d", current, max),
		AtLimit: current >= max,
	}
}
