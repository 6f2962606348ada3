package dynamo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/ShunTr-dev/socios-ajerga/members"
	"github.com/ShunTr-dev/socios-ajerga/signup"
	"github.com/ShunTr-dev/socios-ajerga/slices"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

var _ signup.Repository = &DB{}
var _ signup.AttemptLister = &DB{}

type attemptDynamo struct {
	PK             string
	SK             string
	GSI1PK         string
	GSI1SK         string
	ChargeID       string
	Version        int
	Applicant      members.ApplicantRecord
	AmountMinor    int64
	AmountCurrency string
	State          signup.State
	FailureReason  signup.FailureReason
	ProviderStatus string
	CaptureID      string
	SubmittedAt    time.Time
	UpdatedAt      time.Time
	// TTL attribute, epoch seconds
	ExpiresAt int64
}

const (
	attemptEntityName      = "ATTEMPT"
	attemptStateEntityName = "ATTEMPT_STATE"
)

func attemptPK(chargeID string) string {
	return fmt.Sprintf("%s#%s", attemptEntityName, chargeID)
}

func attemptSK(chargeID string) string {
	return fmt.Sprintf("%s#%s", attemptEntityName, chargeID)
}

func attemptGSI1PK(state signup.State) string {
	return fmt.Sprintf("%s#%s", attemptStateEntityName, state)
}

func attemptToDynamo(attempt signup.Attempt) attemptDynamo {
	d := attemptDynamo{
		PK:             attemptPK(attempt.ChargeID),
		SK:             attemptSK(attempt.ChargeID),
		GSI1PK:         attemptGSI1PK(attempt.State),
		GSI1SK:         fmt.Sprintf("%s#%s#%s", attemptEntityName, attempt.UpdatedAt.UTC().Format(time.RFC3339Nano), attempt.ChargeID),
		ChargeID:       attempt.ChargeID,
		Version:        attempt.Version,
		Applicant:      attempt.Applicant,
		State:          attempt.State,
		FailureReason:  attempt.FailureReason,
		ProviderStatus: attempt.ProviderStatus,
		CaptureID:      attempt.CaptureID,
		SubmittedAt:    attempt.SubmittedAt,
		UpdatedAt:      attempt.UpdatedAt,
		ExpiresAt:      attempt.ExpiresAt.Unix(),
	}
	if attempt.Amount != nil {
		d.AmountMinor = attempt.Amount.Amount()
		d.AmountCurrency = attempt.Amount.Currency().Code
	}
	return d
}

func attemptFromDynamo(d attemptDynamo) signup.Attempt {
	var amount *money.Money
	if d.AmountCurrency != "" {
		amount = money.New(d.AmountMinor, d.AmountCurrency)
	}

	return signup.Attempt{
		ChargeID:       d.ChargeID,
		Version:        d.Version,
		Applicant:      d.Applicant,
		Amount:         amount,
		State:          d.State,
		FailureReason:  d.FailureReason,
		ProviderStatus: d.ProviderStatus,
		CaptureID:      d.CaptureID,
		SubmittedAt:    d.SubmittedAt,
		UpdatedAt:      d.UpdatedAt,
		ExpiresAt:      time.Unix(d.ExpiresAt, 0).UTC(),
	}
}

func (d *DB) CreateAttempt(ctx context.Context, attempt signup.Attempt) error {
	err := d.putAttempt(ctx, attempt, true)

	var condCheckFailedErr *types.ConditionalCheckFailedException
	if errors.As(err, &condCheckFailedErr) {
		return signup.NewAttemptAlreadyExistsError(fmt.Sprintf("Attempt for charge %q already exists", attempt.ChargeID), err)
	}
	return err
}

func (d *DB) GetAttempt(ctx context.Context, chargeID string) (signup.Attempt, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	resp, err := d.dynamoClient.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(d.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: attemptPK(chargeID)},
			"SK": &types.AttributeValueMemberS{Value: attemptSK(chargeID)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return signup.Attempt{}, signup.NewTimeoutError("GetAttempt timed out")
		}
		return signup.Attempt{}, signup.NewFailedToFetchError(fmt.Sprintf("Failed to fetch attempt for charge %q", chargeID), err)
	}

	if len(resp.Item) == 0 {
		return signup.Attempt{}, signup.NewAttemptDoesNotExistError(fmt.Sprintf("Attempt for charge %q not found", chargeID), nil)
	}

	var attempt attemptDynamo
	err = attributevalue.UnmarshalMap(resp.Item, &attempt)
	if err != nil {
		return signup.Attempt{}, signup.NewFailedToTranslateToDBModelError(fmt.Sprintf("Stored attempt for charge %q is malformed", chargeID), err)
	}
	return attemptFromDynamo(attempt), nil
}

func (d *DB) UpdateAttempt(ctx context.Context, attempt signup.Attempt) error {
	err := d.putAttempt(ctx, attempt, false)

	var condCheckFailedErr *types.ConditionalCheckFailedException
	if errors.As(err, &condCheckFailedErr) {
		return signup.NewAttemptVersionConflictError(fmt.Sprintf("Attempt for charge %q is not at version %d", attempt.ChargeID, attempt.Version-1), err)
	}
	return err
}

// putAttempt writes the whole item under the version guard. A failed guard is
// returned unwrapped so the caller can name the conflict.
func (d *DB) putAttempt(ctx context.Context, attempt signup.Attempt, isNew bool) error {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	dynamoItem := attemptToDynamo(attempt)

	item, err := attributevalue.MarshalMap(dynamoItem)
	if err != nil {
		return signup.NewFailedToTranslateToDBModelError("Failed to convert Attempt to attemptDynamo", err)
	}

	expr, err := expression.NewBuilder().WithCondition(attemptVersionCondition(dynamoItem.Version, isNew)).Build()
	if err != nil {
		return signup.NewFailedToTranslateToDBModelError("Failed to build attempt version condition", err)
	}

	_, err = d.dynamoClient.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                 aws.String(d.tableName),
		Item:                      item,
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		var condCheckFailedErr *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailedErr) {
			return condCheckFailedErr
		} else if errors.Is(err, context.DeadlineExceeded) {
			return signup.NewTimeoutError(fmt.Sprintf("Writing attempt for charge %q timed out", attempt.ChargeID))
		}
		return signup.NewFailedToWriteError("Failed PutItem call", err)
	}

	return nil
}

// attemptVersionCondition makes a new attempt start at version 1 on an empty
// key. An update carries the bumped version, so the stored one must be exactly
// one behind.
func attemptVersionCondition(version int, isNew bool) expression.ConditionBuilder {
	if isNew {
		return expression.Name("PK").AttributeNotExists().
			And(expression.Value(version).Equal(expression.Value(1)))
	}
	return expression.Name("PK").AttributeExists().
		And(expression.Name("Version").Equal(expression.Value(version - 1)))
}

func (d *DB) ListAttemptsByState(ctx context.Context, state signup.State, limit int32, cursor *string) (signup.ListAttemptsResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	keyCond := expression.Key("GSI1PK").Equal(expression.Value(attemptGSI1PK(state))).
		And(expression.Key("GSI1SK").BeginsWith(attemptEntityName))

	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return signup.ListAttemptsResponse{}, signup.NewFailedToTranslateToDBModelError("Failed to build attempt state query", err)
	}

	var startKey map[string]types.AttributeValue
	if cursor != nil {
		startKey, err = decodeCursor(*cursor)
		if err != nil {
			return signup.ListAttemptsResponse{}, signup.NewInvalidCursorError("Invalid cursor", err)
		}
	}

	result, err := d.dynamoClient.Query(ctx, &dynamodb.QueryInput{
		IndexName:                 aws.String(gsi1),
		TableName:                 aws.String(d.tableName),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		// most recently updated first
		ScanIndexForward: aws.Bool(false),
		// one extra item tells whether there is another page
		Limit:             aws.Int32(limit + 1),
		ExclusiveStartKey: startKey,
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return signup.ListAttemptsResponse{}, signup.NewTimeoutError("ListAttemptsByState timed out")
		}
		return signup.ListAttemptsResponse{}, signup.NewFailedToFetchError("Failed to query attempts", err)
	}

	var dynamoItems []attemptDynamo
	err = attributevalue.UnmarshalListOfMaps(result.Items, &dynamoItems)
	if err != nil {
		panic(fmt.Sprintf("failed to unmarshal dynamo attempts: %s", err))
	}

	hasNextPage := len(dynamoItems) > int(limit)

	var newCursor *string
	if hasNextPage && len(result.LastEvaluatedKey) > 0 {
		// the page handed out ends one item before the extra one
		lastReturned := result.Items[len(result.Items)-2]
		c, err := encodeCursor(keyOf(result.LastEvaluatedKey, lastReturned))
		if err != nil {
			panic(fmt.Sprintf("failed to make cursor from last key: %s", err))
		}
		newCursor = &c
	}

	return signup.ListAttemptsResponse{
		Data:        slices.Map(dynamoItems, attemptFromDynamo)[:min(int(limit), len(dynamoItems))],
		Cursor:      newCursor,
		HasNextPage: hasNextPage,
	}, nil
}
