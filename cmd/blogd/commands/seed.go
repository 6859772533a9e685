package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blogsphere/blog-platform/internal/core/service"
	"github.com/blogsphere/blog-platform/internal/infrastructure/db/mongo"
)

func newSeedCommand() *cobra.Command {
	var in service.SeedInput

	cmd := &cobra.Command{
		Use:   "seed",
		Args:  cobra.NoArgs,
		Short: "Create indexes and load an admin account with sample content",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return seed(cmd.Context(), cmd, in)
		},
	}

	cmd.Flags().StringVar(&in.AdminUsername, "admin-username", "admin", "username of the bootstrap admin")
	cmd.Flags().StringVar(&in.AdminEmail, "admin-email", "admin@example.com", "email of the bootstrap admin")
	cmd.Flags().StringVar(&in.AdminPassword, "admin-password", "", "password of the bootstrap admin")
	_ = cmd.MarkFlagRequired("admin-password")

	return cmd
}

func seed(ctx context.Context, cmd *cobra.Command, in service.SeedInput) error {
	a, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer a.close(context.Background())

	if err := mongo.EnsureIndexes(ctx, a.db); err != nil {
		return fmt.Errorf("ensure indexes: %w", err)
	}

	res, err := service.NewSeeder(a.users, a.posts, a.comments, a.log).Seed(ctx, in)
	if err != nil {
		return err
	}
	if res.AdminID == "" {
		cmd.Println("admin already exists, nothing to do")
		return nil
	}
	cmd.Printf("seeded admin %s, post %s, comment %s\n", res.AdminID, res.PostID, res.CommentID)
	return nil
}
