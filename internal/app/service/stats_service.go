package service

import (
	"context"
	"fmt"

	"github.com/kebo-sukses/calius-digital/internal/domain/defaults"
	"github.com/kebo-sukses/calius-digital/internal/domain/model"
	"github.com/kebo-sukses/calius-digital/internal/domain/repository"
)

type StatsService struct {
	templates repository.TemplateRepository
	portfolio repository.PortfolioRepository
	blog      repository.BlogRepository
	contacts  repository.ContactRepository
	txs       repository.TransactionRepository
}

func NewStatsService(
	templates repository.TemplateRepository,
	portfolio repository.PortfolioRepository,
	blog repository.BlogRepository,
	contacts repository.ContactRepository,
	txs repository.TransactionRepository,
) *StatsService {
	return &StatsService{templates: templates, portfolio: portfolio, blog: blog, contacts: contacts, txs: txs}
}

type DashboardStats struct {
	Templates        int64 `json:"templates"`
	Portfolio        int64 `json:"portfolio"`
	BlogPosts        int64 `json:"blog_posts"`
	Contacts         int64 `json:"contacts"`
	UnreadContacts   int64 `json:"unread_contacts"`
	Orders           int64 `json:"orders"`
	SuccessfulOrders int64 `json:"successful_orders"`
	Revenue          int64 `json:"revenue"`
}

// Overview aggregates the admin dashboard counters. Content counters report
// the default dataset size while a collection is still empty, matching what
// the public site actually serves.
func (s *StatsService) Overview(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	var err error
	if stats.Templates, err = s.templates.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count templates: %w", err)
	}
	if stats.Templates == 0 {
		stats.Templates = int64(len(defaults.Templates()))
	}

	if stats.Portfolio, err = s.portfolio.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count portfolio: %w", err)
	}
	if stats.Portfolio == 0 {
		stats.Portfolio = int64(len(defaults.Portfolio()))
	}

	if stats.BlogPosts, err = s.blog.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count blog posts: %w", err)
	}
	if stats.BlogPosts == 0 {
		stats.BlogPosts = int64(len(defaults.BlogPosts()))
	}

	if stats.Contacts, err = s.contacts.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count contacts: %w", err)
	}
	if stats.UnreadContacts, err = s.contacts.CountUnread(ctx); err != nil {
		return nil, fmt.Errorf("failed to count unread contacts: %w", err)
	}

	if stats.Orders, err = s.txs.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}
	if stats.SuccessfulOrders, err = s.txs.CountByStatus(ctx, model.StatusSuccess); err != nil {
		return nil, fmt.Errorf("failed to count successful orders: %w", err)
	}
	if stats.Revenue, err = s.txs.SuccessRevenue(ctx); err != nil {
		return nil, fmt.Errorf("failed to sum revenue: %w", err)
	}

	return stats, nil
}
