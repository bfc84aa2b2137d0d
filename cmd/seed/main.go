package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/natanielandrade/backend/internal/config"
	"github.com/natanielandrade/backend/internal/logging"
	"github.com/natanielandrade/backend/internal/model"
	"github.com/natanielandrade/backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Setup("INFO")
		logging.Fatal("load config failed", "error", err)
	}
	logging.Setup(cfg.LogLevel)

	ctx := context.Background()
	pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logging.Fatal("connect failed", "error", err)
	}
	defer pool.Close()

	seedAdmin(ctx, repository.NewPgUserRepository(pool))
	seedCourses(ctx, repository.NewPgCourseRepository(pool))
	seedVideos(ctx, repository.NewPgVideoRepository(pool))

	slog.Info("seed completed")
}

func seedAdmin(ctx context.Context, users repository.UserRepository) {
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@natanielandrade.com"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin"
	}

	if _, err := users.FindByEmail(ctx, email); err == nil {
		slog.Info("admin user already exists", "email", email)
		return
	} else if !errors.Is(err, repository.ErrNotFound) {
		logging.Fatal("lookup admin user failed", "error", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		logging.Fatal("hash admin password failed", "error", err)
	}
	if err := users.Create(ctx, &model.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         "Administrador",
	}); err != nil {
		logging.Fatal("create admin user failed", "error", err)
	}
	slog.Info("admin user created", "email", email)
}

func seedCourses(ctx context.Context, courses repository.CourseRepository) {
	count, err := courses.Count(ctx)
	if err != nil {
		logging.Fatal("count courses failed", "error", err)
	}
	if count > 0 {
		return
	}

	starter := []*model.Course{
		{
			Name:        "Método CIS",
			Description: "Maior treinamento de inteligência emocional do mundo, baseado na metodologia de Paulo Vieira para alta performance pessoal e profissional.",
			Link:        "https://febracis.com/cursos/metodo-cis/",
			Image:       "/images/genetic-image.png",
		},
		{
			Name:        "Formação em Coaching Integral Sistêmico",
			Description: "Treinamento completo para quem busca ferramentas para uma carreira de alta performance com certificação internacional.",
			Link:        "https://febracis.com/cursos/formacao-em-coaching-integral-sistemico/",
			Image:       "/images/genetic-image.png",
		},
	}
	for _, c := range starter {
		if err := courses.Create(ctx, c); err != nil {
			logging.Fatal("create course failed", "name", c.Name, "error", err)
		}
	}
	slog.Info("starter courses created", "count", len(starter))
}

func seedVideos(ctx context.Context, videos repository.VideoRepository) {
	count, err := videos.Count(ctx)
	if err != nil {
		logging.Fatal("count videos failed", "error", err)
	}
	if count > 0 {
		return
	}

	starter := []*model.Video{
		{
			Title:     "Você é um sonhador ou um realizador?",
			URL:       "https://www.youtube.com/shorts/Iijy7bVRUCE",
			Thumbnail: "https://img.youtube.com/vi/Iijy7bVRUCE/maxresdefault.jpg",
		},
		{
			Title:     "Mais uma turma de Team Coaching Business!",
			URL:       "https://www.youtube.com/shorts/qF4LXDIlqB8",
			Thumbnail: "https://img.youtube.com/vi/qF4LXDIlqB8/maxresdefault.jpg",
		},
	}
	for _, v := range starter {
		if err := videos.Create(ctx, v); err != nil {
			logging.Fatal("create video failed", "title", v.Title, "error", err)
		}
	}
	slog.Info("starter videos created", "count", len(starter))
}
