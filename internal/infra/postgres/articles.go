package postgres

import (
	"context"

	"personal-trainer-app/internal/domain/articles"
)

type Articles struct {
	*DB
}

func NewArticles(db *DB) *Articles {
	return &Articles{DB: db}
}

func (s *Articles) ListPublishedArticles(ctx context.Context) ([]articles.Article, error) {
	var out []articles.Article
	err := s.conn(ctx).Where("is_final_mode = ?", true).Order("published_moment DESC, id DESC").Find(&out).Error
	if err != nil {
		return nil, translate("articles", err)
	}
	return out, nil
}

func (s *Articles) ListArticlesByNutritionist(ctx context.Context, nutritionistID uint) ([]articles.Article, error) {
	var out []articles.Article
	err := s.conn(ctx).Where("nutritionist_id = ?", nutritionistID).Order("id").Find(&out).Error
	if err != nil {
		return nil, translate("articles", err)
	}
	return out, nil
}

func (s *Articles) FindArticle(ctx context.Context, id uint) (*articles.Article, error) {
	var a articles.Article
	if err := s.conn(ctx).First(&a, id).Error; err != nil {
		return nil, translate("article", err)
	}
	return &a, nil
}

func (s *Articles) CreateArticle(ctx context.Context, a *articles.Article) error {
	return translate("article", s.conn(ctx).Omit("Nutritionist").Create(a).Error)
}

func (s *Articles) UpdateArticle(ctx context.Context, a *articles.Article) error {
	return translate("article", s.conn(ctx).Model(a).Updates(map[string]any{
		"title":            a.Title,
		"summary":          a.Summary,
		"body":             a.Body,
		"pictures":         a.Pictures,
		"is_final_mode":    a.IsFinalMode,
		"published_moment": a.PublishedMoment,
	}).Error)
}
