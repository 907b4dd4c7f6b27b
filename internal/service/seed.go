package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rodgersmanaseh/cedy1/internal/domain"
	"github.com/rodgersmanaseh/cedy1/internal/logger"
)

// Seeder loads the default admin user and sample content into fresh
// stores at boot. The store is process-lifetime only, so every start
// begins from this baseline.
type Seeder struct {
	articles ArticleServiceInterface
	auth     *AuthService
}

// NewSeeder creates a new Seeder.
func NewSeeder(articles ArticleServiceInterface, auth *AuthService) *Seeder {
	return &Seeder{
		articles: articles,
		auth:     auth,
	}
}

// SeedAdmin creates the admin account from configuration. An empty
// password leaves the admin surface unreachable rather than guessable.
func (s *Seeder) SeedAdmin(ctx context.Context, username, password string) error {
	if password == "" {
		logger.Warn("ADMIN_PASSWORD not set; admin login disabled")
		return nil
	}

	user, err := s.auth.CreateUser(ctx, username, password, "admin")
	if err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}

	logger.Info("admin user seeded", slog.String("username", user.Username))
	return nil
}

// SeedArticles loads the sample stories.
func (s *Seeder) SeedArticles(ctx context.Context) error {
	for _, input := range sampleArticles() {
		if _, err := s.articles.Create(ctx, input); err != nil {
			return fmt.Errorf("seed article %q: %w", input.Slug, err)
		}
	}

	logger.Info("sample articles seeded", slog.Int("count", len(sampleArticles())))
	return nil
}

func sampleArticles() []ArticleInput {
	return []ArticleInput{
		{
			Title:         "Parliament Passes Historic Education Reform Bill",
			Slug:          "parliament-passes-education-reform-bill",
			Excerpt:       "The National Assembly unanimously approves comprehensive education reforms that will transform Kenya's learning landscape for generations to come.",
			Content:       "# Parliament Passes Historic Education Reform Bill\n\nIn a historic vote that marks a significant milestone for Kenya's education sector, the National Assembly unanimously approved comprehensive education reforms that promise to transform the country's learning landscape for generations to come.\n\nThe landmark legislation introduces sweeping changes to curriculum delivery, teacher training standards, and infrastructure development across all levels of education from primary to tertiary institutions.\n\n## Key Provisions of the Reform\n\nAmong the most significant changes introduced by the bill is the mandatory integration of digital literacy programs starting from primary school level. The reforms also establish new minimum standards for teacher qualification and introduce continuous professional development requirements.",
			Category:      "politics",
			Author:        "Sarah Kimani",
			FeaturedImage: "https://images.unsplash.com/photo-1580902394724-b08ff9ba7e8a?ixlib=rb-4.0.3&auto=format&fit=crop&w=1200&h=600",
			Tags:          []string{"education", "politics", "parliament", "reform"},
			Status:        domain.StatusPublished,
			ReadTime:      5,
		},
		{
			Title:         "Harambee Stars Qualify for AFCON 2024 After Dramatic Victory",
			Slug:          "harambee-stars-qualify-afcon-2024",
			Excerpt:       "Kenya's national football team secured their spot in the Africa Cup of Nations with a thrilling 2-1 victory over their rivals in Nairobi.",
			Content:       "# Harambee Stars Qualify for AFCON 2024\n\nKenya's national football team, Harambee Stars, has officially qualified for the 2024 Africa Cup of Nations following a dramatic 2-1 victory at Kasarani Stadium in Nairobi.\n\nGoals from Michael Olunga and Masoud Juma secured the crucial victory that Kenya needed to book their place in the continental showpiece.\n\n## Match Highlights\n\nThe first half saw both teams create numerous chances, but it was Kenya who broke the deadlock in the 38th minute through a well-worked team move finished by Olunga. The visitors equalized just before halftime, setting up a tense second half.",
			Category:      "football",
			Author:        "Peter Otieno",
			FeaturedImage: "https://images.unsplash.com/photo-1553778263-73a83bab9b0c?ixlib=rb-4.0.3&auto=format&fit=crop&w=1200&h=600",
			Tags:          []string{"football", "harambee stars", "afcon", "sports"},
			Status:        domain.StatusPublished,
			ReadTime:      4,
		},
		{
			Title:         "Kenya's Tech Hubs Leading Africa's Digital Revolution",
			Slug:          "kenya-tech-hubs-digital-revolution",
			Excerpt:       "From Silicon Savannah to iHub, Kenya's technology ecosystem continues to foster innovation and entrepreneurship across the continent.",
			Content:       "# Kenya's Tech Hubs Leading Africa's Digital Revolution\n\nKenya has emerged as a leading technology hub in Africa, with innovations emanating from Nairobi's Silicon Savannah reaching global audiences and transforming lives across the continent.\n\n## The Rise of Silicon Savannah\n\nNairobi's technology ecosystem has grown exponentially over the past decade. iHub, one of the pioneering tech hubs in Africa, has supported over 400 startups and created thousands of jobs in the technology sector.\n\n## Innovation Across Sectors\n\n- **Fintech**: M-Pesa revolutionized mobile money globally\n- **Agritech**: Solutions helping farmers optimize crop yields\n- **Healthtech**: Digital health platforms improving access to healthcare\n- **Edtech**: Educational technologies transforming learning experiences",
			Category:      "education",
			Author:        "James Mwangi",
			FeaturedImage: "https://images.unsplash.com/photo-1556761175-b413da4baf72?ixlib=rb-4.0.3&auto=format&fit=crop&w=1200&h=600",
			Tags:          []string{"technology", "startups", "innovation", "silicon savannah"},
			Status:        domain.StatusPublished,
			ReadTime:      7,
		},
	}
}
