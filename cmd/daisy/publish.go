package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vango-dev/daisy/internal/errors"
	"github.com/vango-dev/daisy/internal/publish"
)

// Environment variables holding static credentials for S3-compatible stores.
const (
	envAccessKeyID     = "DAISY_S3_ACCESS_KEY_ID"
	envSecretAccessKey = "DAISY_S3_SECRET_ACCESS_KEY"
)

type publishOptions struct {
	bucket    string
	prefix    string
	profile   string
	dryRun    bool
	skipBuild bool
	build     buildOptions
}

func newPublishCmd(flags *rootFlags) *cobra.Command {
	opts := &publishOptions{}

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Build the gallery and upload it to S3",
		Long: `Build the gallery and upload every file to a bucket.

The bucket, prefix, region and endpoint come from the publish section of
daisy.yaml. Credentials use the standard AWS chain; for S3-compatible
stores set ` + envAccessKeyID + ` and ` + envSecretAccessKey + `.

Examples:
  daisy publish --dry-run
  daisy publish --bucket my-gallery --prefix docs/components`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			cfg, _, log, err := flags.project(cmd)
			if err != nil {
				return err
			}
			if opts.bucket != "" {
				cfg.Publish.Bucket = opts.bucket
			}
			if opts.prefix != "" {
				cfg.Publish.Prefix = opts.prefix
			}

			if cfg.Publish.Bucket == "" {
				return errors.New("E501")
			}

			dir := cfg.OutputPath()
			if opts.build.out != "" {
				dir = opts.build.out
			}
			if !opts.skipBuild {
				result, err := runBuild(ctx, cmd, flags, &opts.build)
				if err != nil {
					return err
				}
				dir = result.OutDir
			}

			var client publish.ObjectPutter
			if !opts.dryRun {
				var clientOpts []publish.ClientOption
				if opts.profile != "" {
					clientOpts = append(clientOpts, publish.WithProfile(opts.profile))
				}
				if id := os.Getenv(envAccessKeyID); id != "" {
					clientOpts = append(clientOpts, publish.WithStaticCredentials(id, os.Getenv(envSecretAccessKey)))
				}
				s3Client, err := publish.NewS3Client(ctx, cfg.Publish, clientOpts...)
				if err != nil {
					return err
				}
				client = s3Client
			}

			publisher, err := publish.New(client, log, publish.Options{
				Bucket:       cfg.Publish.Bucket,
				Prefix:       cfg.Publish.Prefix,
				CacheControl: cfg.Publish.CacheControl,
				DryRun:       opts.dryRun,
			})
			if err != nil {
				return err
			}

			result, err := publisher.Publish(ctx, dir)
			if err != nil {
				return err
			}

			p := newPrinter(cmd.OutOrStdout())
			if result.DryRun {
				for _, o := range result.Objects {
					p.Info("%s  %s  %s", o.Key, o.ContentType, formatBytes(o.Size))
				}
				p.Success("Dry run: %d objects would be uploaded to s3://%s", len(result.Objects), cfg.Publish.Bucket)
				return nil
			}
			p.Success("Uploaded %d objects (%s) to s3://%s in %s",
				result.Uploaded, formatBytes(result.Bytes), cfg.Publish.Bucket, result.Duration.Round(time.Millisecond))
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.bucket, "bucket", "", "Bucket name (default from daisy.yaml)")
	cmd.Flags().StringVar(&opts.prefix, "prefix", "", "Key prefix (default from daisy.yaml)")
	cmd.Flags().StringVar(&opts.profile, "profile", "", "Shared AWS config profile")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "List the objects without uploading")
	cmd.Flags().BoolVar(&opts.skipBuild, "skip-build", false, "Publish the existing output directory as is")
	cmd.Flags().StringVarP(&opts.build.out, "out", "o", "", "Output directory (default from daisy.yaml)")

	return cmd
}
