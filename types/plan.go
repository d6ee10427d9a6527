// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package types

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

const planSchema string = `
{
	"$id": "https://github.com/aws-samples/eventbridge-api-destination-provisioner/plan-schema.json",
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"description": "Provisioning plan for the EventBridge connection, API destination, event bus, rule and schedule.",
	"type": "object",
	"definitions": {
		"Name": {
			"type": "string",
			"pattern": "^[\\.\\-_A-Za-z0-9]{1,64}$"
		},
		"Number": {
			"type": "string",
			"pattern": "^[0-9]+$"
		},
		"Bool": {
			"type": "string",
			"enum": ["true", "false"]
		}
	},
	"properties": {
		"ServiceToken": {
			"type": "string",
			"description": "ARN of the custom resource Lambda function. Only present when the plan comes from CloudFormation."
		},
		"Region": {
			"type": "string",
			"description": "AWS region all resources are provisioned in.",
			"pattern": "^[a-z]{2}(-[a-z]+)+-[0-9]$"
		},
		"QueueName": {
			"type": "string",
			"description": "SQS queue inspected at the start of the run."
		},
		"ConnectionName": { "$ref": "#/definitions/Name" },
		"ApiKeySecretId": {
			"type": "string",
			"description": "Optional Secrets Manager secret holding the API key used when the connection is created. A random key is generated when omitted."
		},
		"ApiDestinationName": { "$ref": "#/definitions/Name" },
		"InvocationRateLimitPerSecond": { "$ref": "#/definitions/Number" },
		"GatewayApiName": {
			"type": "string",
			"description": "Name of the API Gateway HTTP API the destination invokes."
		},
		"GatewayStage": { "type": "string", "pattern": "^[^/]+$" },
		"GatewayRoute": { "type": "string", "pattern": "^[^/].*$" },
		"EventBusName": { "$ref": "#/definitions/Name" },
		"RuleName": { "$ref": "#/definitions/Name" },
		"RuleRoleName": {
			"type": "string",
			"description": "IAM role carried by the rule target to invoke the API destination."
		},
		"SchedulerRoleName": {
			"type": "string",
			"description": "IAM role assumed by EventBridge Scheduler."
		},
		"ScheduleMode": {
			"type": "string",
			"description": "event-bus: schedule puts events on the bus and the rule forwards them. api-destination: schedule calls EventBridge directly.",
			"enum": ["event-bus", "api-destination"]
		},
		"BusScheduleName": { "$ref": "#/definitions/Name" },
		"BusScheduleExpression": { "type": "string" },
		"DestinationScheduleName": { "$ref": "#/definitions/Name" },
		"DestinationScheduleExpression": { "type": "string" },
		"DestinationScheduleAction": {
			"type": "string",
			"description": "EventBridge API action invoked by the universal schedule target.",
			"pattern": "^[a-z][A-Za-z]+$"
		},
		"UniquifyScheduleName": { "$ref": "#/definitions/Bool" },
		"AssumeRole": {
			"type": "object",
			"description": "Optional role assumed before any EventBridge, Scheduler or API Gateway call.",
			"required": ["RoleName", "SessionName"],
			"properties": {
				"RoleName": { "type": "string" },
				"SessionName": { "type": "string", "pattern": "^[\\w+=,.@-]{2,64}$" },
				"AccountId": { "type": "string", "pattern": "^[0-9]{12}$" }
			},
			"additionalProperties": false
		},
		"NotificationTopicArn": {
			"type": "string",
			"description": "Optional SNS topic receiving the run summary.",
			"pattern": "^arn:[^:]+:sns:"
		},
		"FailurePolicy": {
			"type": "string",
			"description": "continue: log a failed step and run the next one. abort: stop at the first failed step.",
			"enum": ["continue", "abort"]
		},
		"Steps": {
			"type": "array",
			"description": "Steps to run. All steps run when omitted.",
			"items": {
				"type": "string",
				"enum": [
					"inspect-queue",
					"resolve-identity",
					"ensure-connection",
					"ensure-api-destination",
					"resolve-roles",
					"ensure-event-bus",
					"ensure-rule",
					"schedule-event-bus",
					"schedule-api-destination",
					"notify"
				]
			},
			"uniqueItems": true
		}
	},
	"additionalProperties": false
}
`

type Step string
type ScheduleMode string
type FailurePolicy string

const (
	StepInspectQueue           Step = "inspect-queue"
	StepResolveIdentity        Step = "resolve-identity"
	StepEnsureConnection       Step = "ensure-connection"
	StepEnsureApiDestination   Step = "ensure-api-destination"
	StepResolveRoles           Step = "resolve-roles"
	StepEnsureEventBus         Step = "ensure-event-bus"
	StepEnsureRule             Step = "ensure-rule"
	StepScheduleEventBus       Step = "schedule-event-bus"
	StepScheduleApiDestination Step = "schedule-api-destination"
	StepNotify                 Step = "notify"

	ScheduleModeEventBus       ScheduleMode = "event-bus"
	ScheduleModeApiDestination ScheduleMode = "api-destination"

	FailurePolicyContinue FailurePolicy = "continue"
	FailurePolicyAbort    FailurePolicy = "abort"
)

// AllSteps lists every step in execution order.
var AllSteps = []Step{
	StepInspectQueue,
	StepResolveIdentity,
	StepEnsureConnection,
	StepEnsureApiDestination,
	StepResolveRoles,
	StepEnsureEventBus,
	StepEnsureRule,
	StepScheduleEventBus,
	StepScheduleApiDestination,
	StepNotify,
}

type AssumeRole struct {
	RoleName    string
	SessionName string
	AccountId   string
}

type Plan struct {
	Region                        string
	QueueName                     string
	ConnectionName                string
	ApiKeySecretId                string
	ApiDestinationName            string
	InvocationRateLimitPerSecond  int `json:",string"`
	GatewayApiName                string
	GatewayStage                  string
	GatewayRoute                  string
	EventBusName                  string
	RuleName                      string
	RuleRoleName                  string
	SchedulerRoleName             string
	ScheduleMode                  ScheduleMode
	BusScheduleName               string
	BusScheduleExpression         string
	DestinationScheduleName       string
	DestinationScheduleExpression string
	DestinationScheduleAction     string
	UniquifyScheduleName          bool `json:",string"`
	AssumeRole                    *AssumeRole
	NotificationTopicArn          string
	FailurePolicy                 FailurePolicy
	Steps                         []Step
}

// DefaultPlan returns the plan used when no plan file is given.
func DefaultPlan() Plan {
	return Plan{
		Region:                        "us-east-2",
		QueueName:                     "dlq-queue",
		ConnectionName:                "event-bridge-connection",
		ApiDestinationName:            "event-bridge-api-dest",
		InvocationRateLimitPerSecond:  5,
		GatewayApiName:                "transfers-api",
		GatewayStage:                  "dev",
		GatewayRoute:                  "log",
		EventBusName:                  "invoke-api-dest-rule-bus",
		RuleName:                      "invoke-api-dest-rule",
		RuleRoleName:                  "scheduler-invoke-api-destination-role",
		SchedulerRoleName:             "scheduler-putevents-sqs-role",
		ScheduleMode:                  ScheduleModeEventBus,
		BusScheduleName:               "event-schedule-bus",
		BusScheduleExpression:         "rate(1 minutes)",
		DestinationScheduleName:       "event-schedule-api-dest",
		DestinationScheduleExpression: "rate(2 minutes)",
		DestinationScheduleAction:     "describeApiDestination",
		FailurePolicy:                 FailurePolicyContinue,
	}
}

// NewPlan validates props against the plan schema and overlays them on the
// default plan.
func NewPlan(props map[string]interface{}) (*Plan, error) {
	return NewPlanWithDefaults(DefaultPlan(), props)
}

// NewPlanWithDefaults is NewPlan with base supplying every value props omit.
func NewPlanWithDefaults(base Plan, props map[string]interface{}) (*Plan, error) {
	buf, err := json.Marshal(props)
	if err != nil {
		return nil, err
	}
	schemaLoader := gojsonschema.NewStringLoader(planSchema)
	documentLoader := gojsonschema.NewBytesLoader(buf)
	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, err
	}

	if !result.Valid() {
		msgs := make([]string, len(result.Errors()))
		for i, e := range result.Errors() {
			msgs[i] = e.String()
		}
		return nil, InvalidArgumentf("%s", strings.Join(msgs, " "))
	}

	p := base
	if err := json.Unmarshal(buf, &p); err != nil {
		return nil, errors.WithStack(err)
	}
	if len(p.Steps) == 0 {
		p.Steps = append([]Step(nil), AllSteps...)
	}
	for _, expr := range []string{p.BusScheduleExpression, p.DestinationScheduleExpression} {
		if err := ValidateScheduleExpression(expr); err != nil {
			return nil, err
		}
	}
	return &p, nil
}

// LoadPlanFile reads a YAML or JSON plan file.
func LoadPlanFile(path string) (*Plan, error) {
	return LoadPlanFileWithDefaults(DefaultPlan(), path)
}

func LoadPlanFileWithDefaults(base Plan, path string) (*Plan, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	var props map[string]interface{}
	if err := yaml.Unmarshal(buf, &props); err != nil {
		return nil, errors.Wrapf(err, "parse plan file %s", path)
	}
	if props == nil {
		props = map[string]interface{}{}
	}
	return NewPlanWithDefaults(base, stringifyScalars(props).(map[string]interface{}))
}

// CloudFormation hands every resource property over as a string, so the
// schema only accepts strings for scalar values. Plan files may use native
// YAML numbers and booleans.
func stringifyScalars(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, e := range t {
			out[k] = stringifyScalars(e)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, e := range t {
			out[i] = stringifyScalars(e)
		}
		return out
	case string, nil:
		return t
	default:
		return fmt.Sprint(t)
	}
}

// StepEnabled reports whether s is part of the plan.
func (p *Plan) StepEnabled(s Step) bool {
	for _, e := range p.Steps {
		if e == s {
			return true
		}
	}
	return false
}

// ValidateScheduleExpression checks EventBridge Scheduler expression syntax:
// rate(value unit), cron(6 fields) or at(yyyy-mm-ddThh:mm:ss).
func ValidateScheduleExpression(expr string) error {
	expr = strings.TrimSpace(expr)
	switch {
	case strings.HasPrefix(expr, "rate(") && strings.HasSuffix(expr, ")"):
		parts := strings.Fields(expr[5 : len(expr)-1])
		if len(parts) != 2 {
			return InvalidArgumentf("rate expression %q must have format rate(value unit)", expr)
		}
		for _, r := range parts[0] {
			if r < '0' || r > '9' {
				return InvalidArgumentf("rate expression %q must have a numeric value", expr)
			}
		}
		switch parts[1] {
		case "minute", "minutes", "hour", "hours", "day", "days":
			return nil
		}
		return InvalidArgumentf("rate expression %q has unknown unit %q", expr, parts[1])
	case strings.HasPrefix(expr, "cron(") && strings.HasSuffix(expr, ")"):
		if len(strings.Fields(expr[5:len(expr)-1])) != 6 {
			return InvalidArgumentf("cron expression %q must have 6 fields", expr)
		}
		return nil
	case strings.HasPrefix(expr, "at(") && strings.HasSuffix(expr, ")"):
		if _, err := time.Parse("2006-01-02T15:04:05", expr[3:len(expr)-1]); err != nil {
			return InvalidArgumentf("at expression %q must be in format yyyy-mm-ddThh:mm:ss", expr)
		}
		return nil
	}
	return InvalidArgumentf("schedule expression %q must start with rate(), cron() or at()", expr)
}
