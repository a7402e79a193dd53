package articles

import (
	"context"
	"strings"
	"time"

	"personal-trainer-app/internal/apperr"
	"personal-trainer-app/internal/domain/actors"
	"personal-trainer-app/internal/domain/articles"
	"personal-trainer-app/internal/infra/logging"

	"github.com/sirupsen/logrus"
)

type Store interface {
	ListPublishedArticles(ctx context.Context) ([]articles.Article, error)
	// ListArticlesByNutritionist includes drafts.
	ListArticlesByNutritionist(ctx context.Context, nutritionistID uint) ([]articles.Article, error)
	FindArticle(ctx context.Context, id uint) (*articles.Article, error)
	CreateArticle(ctx context.Context, a *articles.Article) error
	UpdateArticle(ctx context.Context, a *articles.Article) error
}

type Service struct {
	store Store
	log   logrus.FieldLogger
	now   func() time.Time
}

type Option func(*Service)

func WithLogger(l logrus.FieldLogger) Option { return func(s *Service) { s.log = l } }

func WithClock(now func() time.Time) Option { return func(s *Service) { s.now = now } }

func NewService(store Store, opts ...Option) *Service {
	s := &Service{store: store, log: logging.Discard(), now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListAll lists every published article.
func (s *Service) ListAll(ctx context.Context) ([]articles.Article, error) {
	return s.store.ListPublishedArticles(ctx)
}

// ListByNutritionist lists a nutritionist's articles. The author also sees
// its drafts; everybody else only the published ones.
func (s *Service) ListByNutritionist(ctx context.Context, nutritionistID uint, viewer actors.Actor) ([]articles.Article, error) {
	all, err := s.store.ListArticlesByNutritionist(ctx, nutritionistID)
	if err != nil {
		return nil, err
	}
	out := make([]articles.Article, 0, len(all))
	for _, a := range all {
		if a.VisibleTo(viewer.ID) {
			out = append(out, a)
		}
	}
	return out, nil
}

// Display returns one article; a draft is reported as missing to anyone but
// its author.
func (s *Service) Display(ctx context.Context, id uint, viewer actors.Actor) (*articles.Article, error) {
	a, err := s.store.FindArticle(ctx, id)
	if err != nil {
		return nil, err
	}
	if !a.VisibleTo(viewer.ID) {
		return nil, apperr.NotFound("article", nil)
	}
	return a, nil
}

type Input struct {
	Title    string
	Summary  string
	Body     string
	Pictures []string
}

func (in Input) apply(a *articles.Article) error {
	title := strings.TrimSpace(in.Title)
	body := strings.TrimSpace(in.Body)
	if title == "" || body == "" {
		return apperr.Validation(apperr.ReasonMissingField, "title and body are required")
	}
	a.Title = title
	a.Summary = strings.TrimSpace(in.Summary)
	a.Body = body

	pics := make([]string, 0, len(in.Pictures))
	for _, p := range in.Pictures {
		if p = strings.TrimSpace(p); p != "" {
			pics = append(pics, p)
		}
	}
	a.Pictures = strings.Join(pics, ",")
	return nil
}

func (s *Service) CreateDraft(ctx context.Context, actor actors.Actor, in Input) (*articles.Article, error) {
	author, err := actor.AsNutritionist()
	if err != nil {
		return nil, err
	}
	a := articles.Article{NutritionistID: author.ID}
	if err := in.apply(&a); err != nil {
		return nil, err
	}
	if err := s.store.CreateArticle(ctx, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *Service) UpdateDraft(ctx context.Context, id uint, actor actors.Actor, in Input) (*articles.Article, error) {
	a, err := s.ownedDraft(ctx, id, actor)
	if err != nil {
		return nil, err
	}
	if err := in.apply(a); err != nil {
		return nil, err
	}
	if err := s.store.UpdateArticle(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Publish puts the article in final mode; it cannot be edited afterwards.
func (s *Service) Publish(ctx context.Context, id uint, actor actors.Actor) (*articles.Article, error) {
	a, err := s.ownedDraft(ctx, id, actor)
	if err != nil {
		return nil, err
	}
	moment := s.now()
	a.IsFinalMode = true
	a.PublishedMoment = &moment
	if err := s.store.UpdateArticle(ctx, a); err != nil {
		return nil, err
	}
	s.log.WithFields(logrus.Fields{"article_id": a.ID, "nutritionist_id": a.NutritionistID}).Info("article published")
	return a, nil
}

func (s *Service) ownedDraft(ctx context.Context, id uint, actor actors.Actor) (*articles.Article, error) {
	author, err := actor.AsNutritionist()
	if err != nil {
		return nil, err
	}
	a, err := s.store.FindArticle(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.NutritionistID != author.ID {
		return nil, apperr.Authorization(apperr.ReasonNotOwner, "article belongs to another nutritionist")
	}
	if a.IsFinalMode {
		return nil, apperr.State(apperr.ReasonArticlePublished, "published articles cannot be changed")
	}
	return a, nil
}
