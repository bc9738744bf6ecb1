package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"

	"funilaria_xpto/internal/domain/entities"
	"funilaria_xpto/internal/usecase/interfaces"
)

const (
	defaultPaymentsTableName = "deductible_payments"
	paymentsClaimIDIndex     = "claim_id-index"
)

type deductiblePaymentItem struct {
	ID           string                 `dynamodbav:"id"`
	ClaimID      string                 `dynamodbav:"claim_id"`
	Amount       string                 `dynamodbav:"amount"`
	Date         string                 `dynamodbav:"date"`
	Status       string                 `dynamodbav:"status"`
	MPPayload    map[string]interface{} `dynamodbav:"mp_payload,omitempty"`
	MPPayloadRaw string                 `dynamodbav:"mp_payload_raw,omitempty"`
}

// DeductiblePaymentDynamoRepository persists DeductiblePayment entities.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: claim_id-index (PK: claim_id)
type DeductiblePaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDeductiblePaymentRepository = (*DeductiblePaymentDynamoRepository)(nil)

func NewDeductiblePaymentDynamoRepository(ddb *dynamodb.Client) *DeductiblePaymentDynamoRepository {
	return &DeductiblePaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DEDUCTIBLE_PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *DeductiblePaymentDynamoRepository) Create(ctx context.Context, p entities.DeductiblePayment) (entities.DeductiblePayment, error) {
	av, err := attributevalue.MarshalMap(toDeductiblePaymentItem(p))
	if err != nil {
		return entities.DeductiblePayment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.DeductiblePayment{}, err
	}
	return p, nil
}

func (r *DeductiblePaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.DeductiblePayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.DeductiblePayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.DeductiblePayment{}, nil
	}

	var it deductiblePaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.DeductiblePayment{}, err
	}
	return fromDeductiblePaymentItem(it), nil
}

func (r *DeductiblePaymentDynamoRepository) ListByClaimID(ctx context.Context, claimID string) ([]entities.DeductiblePayment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsClaimIDIndex),
		KeyConditionExpression: aws.String("#claim_id = :claim_id"),
		ExpressionAttributeNames: map[string]string{
			"#claim_id": "claim_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":claim_id": &types.AttributeValueMemberS{Value: claimID},
		},
	})
	if err != nil {
		return nil, err
	}

	payments := make([]entities.DeductiblePayment, 0, len(out.Items))
	for _, item := range out.Items {
		var it deductiblePaymentItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		payments = append(payments, fromDeductiblePaymentItem(it))
	}
	return payments, nil
}

func toDeductiblePaymentItem(p entities.DeductiblePayment) deductiblePaymentItem {
	return deductiblePaymentItem{
		ID:           p.ID,
		ClaimID:      p.ClaimID,
		Amount:       p.Amount.String(),
		Date:         p.Date.UTC().Format(time.RFC3339Nano),
		Status:       string(p.Status),
		MPPayload:    p.MPPayload,
		MPPayloadRaw: string(p.MPPayloadRaw),
	}
}

func fromDeductiblePaymentItem(it deductiblePaymentItem) entities.DeductiblePayment {
	date, _ := time.Parse(time.RFC3339Nano, it.Date)
	amount, err := decimal.NewFromString(it.Amount)
	if err != nil {
		amount = decimal.Zero
	}

	p := entities.DeductiblePayment{
		ID:        it.ID,
		ClaimID:   it.ClaimID,
		Amount:    amount,
		Date:      date,
		Status:    entities.PaymentStatus(it.Status),
		MPPayload: it.MPPayload,
	}
	if it.MPPayloadRaw != "" {
		p.MPPayloadRaw = json.RawMessage(it.MPPayloadRaw)
	}
	return p
}
