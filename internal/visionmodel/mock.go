package visionmodel

import "context"

// MockDescriber returns a fixed description, recording the questions asked.
type MockDescriber struct {
	Description string
	Err         error
	Questions   []string
}

func NewMockDescriber(description string) *MockDescriber {
	if description == "" {
		description = "a tidy desk with a laptop and a cup of chai"
	}
	return &MockDescriber{Description: description}
}

func (d *MockDescriber) Describe(_ context.Context, _ []byte, question string) (string, error) {
	d.Questions = append(d.Questions, question)
	if d.Err != nil {
		return "", d.Err
	}
	return d.Description, nil
}

// MockFrameSource hands out a tiny fixed frame.
type MockFrameSource struct {
	Err      error
	Captures int
}

func NewMockFrameSource() *MockFrameSource { return &MockFrameSource{} }

func (s *MockFrameSource) Capture(context.Context) ([]byte, error) {
	s.Captures++
	if s.Err != nil {
		return nil, s.Err
	}
	return []byte{0xff, 0xd8, 0xff, 0xd9}, nil
}
