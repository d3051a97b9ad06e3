package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"
	"xss-labs/internal/detector"
	"xss-labs/internal/domain"
	"xss-labs/internal/inspect"
	"xss-labs/internal/jsctx"
	"xss-labs/internal/transform"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

var (
	ErrLabNotFound       = errors.New("lab não encontrado")
	ErrIncompleteComment = errors.New("nome e comentário são obrigatórios")
)

type LabService struct {
	repo   CommentRepository
	labs   []*domain.Lab
	byKey  map[string]int
	policy *bluemonday.Policy
	now    func() time.Time
}

func NewLabService(repo CommentRepository) *LabService {
	labs := domain.Catalog()
	byKey := make(map[string]int, len(labs))
	for i, l := range labs {
		byKey[l.Key] = i
	}
	return &LabService{
		repo:   repo,
		labs:   labs,
		byKey:  byKey,
		policy: bluemonday.UGCPolicy(),
		now:    time.Now,
	}
}

func (s *LabService) Dashboard() *domain.Dashboard {
	return domain.NewDashboard(s.labs)
}

func (s *LabService) GetLab(key string) (*domain.Lab, error) {
	i, ok := s.byKey[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLabNotFound, key)
	}
	return s.labs[i], nil
}

// Page builds the render context of a lab. Non-empty input values are
// reflected as-is and summarised by the signal indicator.
func (s *LabService) Page(key string, input map[string]string) (*domain.Page, error) {
	lab, err := s.GetLab(key)
	if err != nil {
		return nil, err
	}

	page := &domain.Page{Lab: lab}
	if i := s.byKey[key]; i+1 < len(s.labs) {
		page.NextLabURL = s.labs[i+1].URL()
	}

	values := make([]string, 0, len(input))
	for k, v := range input {
		if v == "" {
			continue
		}
		if page.Input == nil {
			page.Input = make(map[string]string)
		}
		page.Input[k] = v
	}
	keys := make([]string, 0, len(page.Input))
	for k := range page.Input {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		values = append(values, page.Input[k])
	}
	if len(values) > 0 {
		page.Signal = s.Inspect(strings.Join(values, "\n"))
	}
	return page, nil
}

// Inspect runs the detector and the markup inventory over text.
func (s *LabService) Inspect(text string) *domain.Signal {
	m := detector.Detect(text)
	inv := inspect.Markup(text)
	return &domain.Signal{
		Found:   m.Found,
		Group:   m.Group,
		Pattern: m.Pattern,
		Markup: domain.Markup{
			Elements:      inv.Elements,
			EventHandlers: inv.EventHandlers,
			ScriptURLs:    inv.ScriptURLs,
			Scripts:       inv.Scripts,
		},
	}
}

func (s *LabService) PostComment(ctx context.Context, name, body string) (*domain.Comment, error) {
	if name == "" || body == "" {
		return nil, ErrIncompleteComment
	}

	c := &domain.Comment{
		ID:        uuid.New().String(),
		Name:      name,
		Body:      body,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.CreateComment(ctx, c); err != nil {
		return nil, fmt.Errorf("falha ao guardar comentário: %w", err)
	}
	log.Printf("INFO [LabService]: Comentário %s guardado", c.ID)
	return c, nil
}

func (s *LabService) ListComments(ctx context.Context) ([]*domain.Comment, error) {
	comments, err := s.repo.ListComments(ctx)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar comentários: %w", err)
	}
	return comments, nil
}

// StoredPage appends a comment when both fields are present, then lists
// the whole log newest first.
func (s *LabService) StoredPage(ctx context.Context, name, body string) (*domain.Page, error) {
	page, err := s.Page("stored-basic", map[string]string{"name": name, "comment": body})
	if err != nil {
		return nil, err
	}

	if _, err := s.PostComment(ctx, name, body); err != nil && !errors.Is(err, ErrIncompleteComment) {
		return nil, err
	}

	page.Comments, err = s.ListComments(ctx)
	if err != nil {
		return nil, err
	}
	return page, nil
}

func (s *LabService) MarkdownPage(src string) (*domain.Page, error) {
	page, err := s.Page("markdown-xss", map[string]string{"markdown": src})
	if err != nil {
		return nil, err
	}
	page.MarkdownContent = transform.Markdown(src)
	return page, nil
}

// FilterPage runs the naive blocklist and, for comparison, a real sanitizer.
func (s *LabService) FilterPage(comment string) (*domain.Page, error) {
	page, err := s.Page("filter-bypass", map[string]string{"comment": comment})
	if err != nil {
		return nil, err
	}
	if comment == "" {
		return page, nil
	}

	res := transform.Filter(comment)
	page.Filter = &domain.FilterResult{Output: res.Output, BlockedPatterns: res.BlockedPatterns}
	page.SanitizedComment = s.policy.Sanitize(comment)
	if len(res.BlockedPatterns) > 0 {
		log.Printf("INFO [LabService]: Filtro bloqueou %v", res.BlockedPatterns)
	}
	return page, nil
}

func (s *LabService) ContentTypePage(filename string) (*domain.Page, error) {
	page, err := s.Page("content-type", map[string]string{"filename": filename})
	if err != nil {
		return nil, err
	}
	page.DetectedContentType = transform.DefaultContentType
	if filename != "" {
		page.DetectedContentType = transform.ContentTypeFor(filename)
	}
	return page, nil
}

func (s *LabService) UploadPage(data []byte) (*domain.Page, error) {
	content := ""
	if data != nil {
		content = transform.DecodeUpload(data)
	}
	page, err := s.Page("file-upload-xss", map[string]string{"file": content})
	if err != nil {
		return nil, err
	}
	page.UploadedContent = content
	return page, nil
}

func (s *LabService) JSContextPage(name string) (*domain.Page, error) {
	page, err := s.Page("js-context", map[string]string{"name": name})
	if err != nil {
		return nil, err
	}
	page.Script = jsctx.Script(name)
	if name != "" {
		v := jsctx.Evaluate(name)
		page.JSVerdict = &domain.JSVerdict{Executed: v.Executed, Calls: v.Calls, Error: v.Error}
	}
	return page, nil
}
