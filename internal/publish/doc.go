// Package publish uploads a built gallery to S3 or an S3-compatible store.
//
//	client, err := publish.NewS3Client(ctx, cfg.Publish)
//	p, err := publish.New(client, log, publish.Options{Bucket: cfg.Publish.Bucket})
//	result, err := p.Publish(ctx, cfg.OutputPath())
package publish
