package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cargodeploy-backend/internal/auth"
	"cargodeploy-backend/internal/config"
	"cargodeploy-backend/internal/database"
	"cargodeploy-backend/internal/database/models"
	"cargodeploy-backend/internal/repository"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// UserData is one account in users.yaml
type UserData struct {
	ExternalID           string `yaml:"external_id"`
	Email                string `yaml:"email"`
	Name                 string `yaml:"name"`
	QuotaLimit           int    `yaml:"quota_limit,omitempty"`
	GitHubInstallationID int64  `yaml:"github_installation_id,omitempty"`
}

// EnvVarData is one environment variable of a seeded project
type EnvVarData struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}

// ProjectData is one project in projects.yaml
type ProjectData struct {
	Owner          string       `yaml:"owner"`
	Name           string       `yaml:"name"`
	SlugIdentifier string       `yaml:"slug_identifier"`
	GitHubRepoURL  string       `yaml:"github_repo_url"`
	Branch         string       `yaml:"branch,omitempty"`
	RootDir        string       `yaml:"root_dir,omitempty"`
	BuildCommand   string       `yaml:"build_command,omitempty"`
	InstallCommand string       `yaml:"install_command,omitempty"`
	IsPrivate      bool         `yaml:"is_private"`
	EnvVars        []EnvVarData `yaml:"env_vars,omitempty"`
}

// File structures
type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type ProjectsFile struct {
	Projects []ProjectData `yaml:"projects"`
}

func main() {
	dataDir := flag.String("data", "scripts/data", "directory holding users and projects YAML files")
	printTokens := flag.Bool("tokens", false, "print a bearer token for every seeded user")
	flag.Parse()

	log.Println("Loading development data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.IsProduction() {
		log.Fatal("Refusing to seed a production database")
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	users, err := loadDataFromYAMLFiles(db, *dataDir)
	if err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	if *printTokens {
		authService, err := auth.NewAuthService(cfg.JWTSecret, 24*time.Hour)
		if err != nil {
			log.Fatalf("Failed to create auth service: %v", err)
		}
		for _, user := range users {
			token, err := authService.GenerateJWT(user.ExternalID, user.Email, user.Name)
			if err != nil {
				log.Fatalf("Failed to issue token for %s: %v", user.ExternalID, err)
			}
			fmt.Printf("%s\t%s\n", user.ExternalID, token)
		}
	}

	log.Println("Development data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) ([]*models.User, error) {
	var usersFile UsersFile
	if err := readYAMLFiles(dataDir, "users", func(data []byte) error {
		var file UsersFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		usersFile.Users = append(usersFile.Users, file.Users...)
		return nil
	}); err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}

	var projectsFile ProjectsFile
	if err := readYAMLFiles(dataDir, "projects", func(data []byte) error {
		var file ProjectsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		projectsFile.Projects = append(projectsFile.Projects, file.Projects...)
		return nil
	}); err != nil {
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}

	userMap := make(map[string]*models.User)
	users := make([]*models.User, 0, len(usersFile.Users))
	userCreated := 0
	for _, userData := range usersFile.Users {
		user, created, err := createUser(db, userData)
		if err != nil {
			return nil, fmt.Errorf("failed to create user %s: %w", userData.ExternalID, err)
		}
		userMap[userData.ExternalID] = user
		users = append(users, user)
		if created {
			userCreated++
		}
	}
	log.Printf("Users: %d created, %d total", userCreated, len(usersFile.Users))

	projectCreated := 0
	for _, projectData := range projectsFile.Projects {
		_, created, err := createProject(db, projectData, userMap)
		if err != nil {
			log.Printf("Warning: failed to create project %s: %v", projectData.SlugIdentifier, err)
			continue
		}
		if created {
			projectCreated++
		}
	}
	log.Printf("Projects: %d created, %d total", projectCreated, len(projectsFile.Projects))

	return users, nil
}

// readYAMLFiles calls fn with every .yaml file under dataDir whose path contains kind
func readYAMLFiles(dataDir, kind string, fn func([]byte) error) error {
	return filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".yaml") || !strings.Contains(filepath.Base(path), kind) {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if err := fn(data); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		return nil
	})
}

func createUser(db *gorm.DB, userData UserData) (*models.User, bool, error) {
	if userData.ExternalID == "" {
		return nil, false, errors.New("external_id is required")
	}

	var user models.User
	err := db.Where("external_id = ?", userData.ExternalID).First(&user).Error
	if err == nil {
		return &user, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query user: %w", err)
	}

	quota := userData.QuotaLimit
	if quota <= 0 {
		quota = 3
	}
	user = models.User{
		ExternalID: userData.ExternalID,
		Email:      userData.Email,
		Name:       userData.Name,
		QuotaLimit: quota,
	}
	if userData.GitHubInstallationID != 0 {
		installation := userData.GitHubInstallationID
		user.GitHubInstallationID = &installation
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, true, nil
}

func createProject(db *gorm.DB, projectData ProjectData, userMap map[string]*models.User) (*models.Project, bool, error) {
	owner := userMap[projectData.Owner]
	if owner == nil {
		return nil, false, fmt.Errorf("owner %s not found for project %s", projectData.Owner, projectData.SlugIdentifier)
	}

	var project models.Project
	err := db.Where("slug_identifier = ?", projectData.SlugIdentifier).First(&project).Error
	if err == nil {
		return &project, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query project: %w", err)
	}

	project = models.Project{
		UserID:         owner.ID,
		Name:           projectData.Name,
		SlugIdentifier: projectData.SlugIdentifier,
		GitHubRepoURL:  projectData.GitHubRepoURL,
		Branch:         defaultString(projectData.Branch, "main"),
		RootDir:        defaultString(projectData.RootDir, "./"),
		BuildCommand:   projectData.BuildCommand,
		InstallCommand: projectData.InstallCommand,
		IsPrivate:      projectData.IsPrivate,
	}
	envVars := make([]models.EnvironmentVariable, 0, len(projectData.EnvVars))
	for _, env := range projectData.EnvVars {
		envVars = append(envVars, models.EnvironmentVariable{Key: env.Key, Value: env.Value})
	}

	// Project and its variables go in together
	if err := repository.NewProjectRepository(db).Create(context.Background(), &project, envVars); err != nil {
		return nil, false, fmt.Errorf("failed to create project: %w", err)
	}
	return &project, true, nil
}

func defaultString(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
