package services

import (
	"context"
	"sync"

	"github.com/abdulwahabthakur/AI-Podcast-Generator/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string)                                           {}
func (nopLogger) InfoWithFields(string, map[string]interface{})         {}
func (nopLogger) Error(error, string)                                   {}
func (nopLogger) ErrorWithFields(error, string, map[string]interface{}) {}
func (nopLogger) Debug(string)                                          {}
func (nopLogger) DebugWithFields(string, map[string]interface{})        {}
func (nopLogger) Warn(string)                                           {}
func (nopLogger) WarnWithFields(string, map[string]interface{})         {}

type stubScriptGenerator struct {
	script  []domain.DialogueLine
	err     error
	lastReq domain.ResearchRequest
}

func (s *stubScriptGenerator) GenerateScript(_ context.Context, req domain.ResearchRequest) ([]domain.DialogueLine, error) {
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return s.script, nil
}

type stubRepository struct {
	mu        sync.Mutex
	insertErr error
	inserted  []domain.ScriptRecord
	summaries []domain.ScriptSummary
	record    domain.ScriptRecord
	getErr    error
	deleteErr error
	listErr   error
}

func (s *stubRepository) Insert(_ context.Context, record domain.ScriptRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.insertErr != nil {
		return s.insertErr
	}
	s.inserted = append(s.inserted, record)
	return nil
}

func (s *stubRepository) ListByOwner(context.Context, string) ([]domain.ScriptSummary, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.summaries, nil
}

func (s *stubRepository) GetByID(context.Context, string, string) (domain.ScriptRecord, error) {
	if s.getErr != nil {
		return domain.ScriptRecord{}, s.getErr
	}
	return s.record, nil
}

func (s *stubRepository) DeleteByID(context.Context, string, string) error {
	return s.deleteErr
}

// inlineDispatcher runs submitted tasks synchronously.
type inlineDispatcher struct{}

func (inlineDispatcher) Submit(task func()) error {
	task()
	return nil
}

type stubCompleter struct {
	mu        sync.Mutex
	responses []string
	errs      []error
	calls     int
	prompts   []string
}

func (s *stubCompleter) Complete(_ context.Context, prompt string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.calls
	s.calls++
	s.prompts = append(s.prompts, prompt)
	if idx < len(s.errs) && s.errs[idx] != nil {
		return "", s.errs[idx]
	}
	if idx < len(s.responses) {
		return s.responses[idx], nil
	}
	return "", nil
}

type stubCache struct {
	store map[string]domain.ResearchOutput
}

func newStubCache() *stubCache {
	return &stubCache{store: map[string]domain.ResearchOutput{}}
}

func (s *stubCache) Get(key string) (domain.ResearchOutput, bool) {
	out, ok := s.store[key]
	return out, ok
}

func (s *stubCache) Set(key string, output domain.ResearchOutput) {
	s.store[key] = output
}
