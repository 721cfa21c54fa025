package main

import (
	"careerfit/internal/config"
	"careerfit/internal/logger"
	"careerfit/internal/repository"
	"careerfit/internal/service"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	seedMongoURI string
	seedDB       string
	seedDryRun   bool
)

var rootCmd = &cobra.Command{
	Use:   "seed [files...]",
	Short: "Load assessment definitions from YAML into the catalog",
	Long: `Load assessment definitions from YAML files into MongoDB.

Each file may hold several YAML documents, one assessment per document.
Definitions are matched by slug: an existing assessment with the same slug
is replaced, otherwise a new one is inserted.

With no arguments every *.yaml file under ./seeds is loaded.

EXAMPLES:

  seed                                # Load ./seeds/*.yaml
  seed seeds/data-analyst.yaml        # Load one file
  seed --dry-run seeds/               # Validate without writing`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSeed(cmd.Context(), args)
	},
}

func init() {
	cfg, _ := config.Load()
	rootCmd.Flags().StringVar(&seedMongoURI, "mongo-uri", cfg.MongoURI, "MongoDB connection string")
	rootCmd.Flags().StringVar(&seedDB, "db", cfg.MongoDB, "MongoDB database name")
	rootCmd.Flags().BoolVar(&seedDryRun, "dry-run", false, "Validate definitions without writing")
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runSeed(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"seeds"}
	}

	files, err := expandPaths(args)
	if err != nil {
		return err
	}

	assessments, err := loadAssessments(files)
	if err != nil {
		return err
	}
	for _, a := range assessments {
		if err := service.Normalize(a); err != nil {
			return fmt.Errorf("%s: %w", a.Slug, err)
		}
		logger.Infof("[Seed] %s: %d sections, %d questions, published=%t",
			a.Slug, len(a.Sections), a.QuestionCount(), a.Published)
	}

	if seedDryRun {
		logger.Infof("[Seed] dry run, %d assessments validated", len(assessments))
		return nil
	}

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(seedMongoURI))
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	defer client.Disconnect(ctx)

	if err := client.Ping(connectCtx, nil); err != nil {
		return fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	repo := repository.NewAssessmentRepo(client.Database(seedDB))
	for _, a := range assessments {
		if err := repo.UpsertBySlug(ctx, a); err != nil {
			return fmt.Errorf("failed to upsert %s: %w", a.Slug, err)
		}
	}

	logger.Infof("[Seed] %d assessments upserted into %s", len(assessments), seedDB)
	return nil
}
