// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aws-samples/eventbridge-api-destination-provisioner/provisioner"
	"github.com/aws-samples/eventbridge-api-destination-provisioner/types"

	"github.com/aws/aws-lambda-go/cfn"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type options struct {
	planFile string
	region   string
	logLevel string
}

func main() {
	if os.Getenv("AWS_LAMBDA_RUNTIME_API") != "" {
		lambda.Start(cfn.LambdaWrap(provisioner.NewHandler(loadClients).Handle))
		return
	}

	opts := parseOptions(os.Args[1:])
	logger, err := newConsoleLogger(opts.logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := run(ctx, opts, logger); err != nil {
		logger.Error("Startup failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

// run exits cleanly even when steps fail; the failures are only logged.
func run(ctx context.Context, opts options, logger *zap.Logger) error {
	plan, err := loadPlan(opts)
	if err != nil {
		return err
	}
	clients, err := loadClients(ctx, plan.Region)
	if err != nil {
		return err
	}
	res := provisioner.NewSequencer(clients, plan, logger).Run(ctx)
	if n := res.Failed(); n > 0 {
		logger.Warn("Run completed with failed steps", zap.Int("Failed", n))
	}
	return nil
}

func parseOptions(args []string) options {
	fs := flag.NewFlagSet("eventbridge-api-destination-provisioner", flag.ExitOnError)
	opts := options{}
	fs.StringVar(&opts.planFile, "plan", os.Getenv("PLAN_FILE"), "YAML or JSON plan file (built-in defaults when empty)")
	fs.StringVar(&opts.region, "region", "", "AWS region, overrides the plan and AWS_REGION")
	fs.StringVar(&opts.logLevel, "log-level", envOr("LOG_LEVEL", "info"), "debug, info, warn or error")
	fs.Parse(args)
	return opts
}

// The region comes from the flag, then the plan file, then AWS_REGION.
func loadPlan(opts options) (*types.Plan, error) {
	base := types.DefaultPlan()
	if region := os.Getenv("AWS_REGION"); region != "" {
		base.Region = region
	}
	var plan *types.Plan
	if opts.planFile != "" {
		p, err := types.LoadPlanFileWithDefaults(base, opts.planFile)
		if err != nil {
			return nil, err
		}
		plan = p
	} else {
		p, err := types.NewPlanWithDefaults(base, map[string]interface{}{})
		if err != nil {
			return nil, err
		}
		plan = p
	}
	if opts.region != "" {
		plan.Region = opts.region
	}
	return plan, nil
}

func loadClients(ctx context.Context, region string) (*provisioner.Clients, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, errors.Wrap(err, "load AWS configuration")
	}
	return provisioner.NewClientsFromConfig(cfg), nil
}

func newConsoleLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid log level %q", level)
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return cfg.Build()
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
