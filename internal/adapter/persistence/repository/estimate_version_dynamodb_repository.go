package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"funilaria_xpto/internal/domain/entities"
	"funilaria_xpto/internal/usecase/interfaces"
)

const (
	defaultVersionsTableName = "estimate_versions"

	claimKeyPrefix   = "CLAIM#"
	versionKeyPrefix = "VERSION#"
	changeKeyPrefix  = "CHANGE#"

	// DynamoDB caps TransactWriteItems at 100 items per call.
	maxTransactItems = 100
)

type estimateVersionItem struct {
	PK             string `dynamodbav:"pk"`
	SK             string `dynamodbav:"sk"`
	ID             string `dynamodbav:"id"`
	ClaimID        string `dynamodbav:"claim_id"`
	JobID          string `dynamodbav:"job_id"`
	VersionNumber  int    `dynamodbav:"version_number"`
	RevisionReason string `dynamodbav:"revision_reason"`
	Snapshot       string `dynamodbav:"snapshot"`
	DiffSummary    string `dynamodbav:"diff_summary,omitempty"`
	CreatedAt      string `dynamodbav:"created_at"`
}

type lineItemChangeItem struct {
	PK          string `dynamodbav:"pk"`
	SK          string `dynamodbav:"sk"`
	ID          string `dynamodbav:"id"`
	VersionID   string `dynamodbav:"version_id"`
	LineNumber  int    `dynamodbav:"line_number"`
	ItemType    string `dynamodbav:"item_type"`
	ChangeType  string `dynamodbav:"change_type"`
	Description string `dynamodbav:"description,omitempty"`

	PreviousQuantity string `dynamodbav:"previous_quantity,omitempty"`
	CurrentQuantity  string `dynamodbav:"current_quantity,omitempty"`
	QuantityChange   string `dynamodbav:"quantity_change,omitempty"`
	PreviousPrice    string `dynamodbav:"previous_price,omitempty"`
	CurrentPrice     string `dynamodbav:"current_price,omitempty"`
	PriceChange      string `dynamodbav:"price_change,omitempty"`
	PreviousHours    string `dynamodbav:"previous_hours,omitempty"`
	CurrentHours     string `dynamodbav:"current_hours,omitempty"`
	HoursChange      string `dynamodbav:"hours_change,omitempty"`
	PreviousExtended string `dynamodbav:"previous_extended,omitempty"`
	CurrentExtended  string `dynamodbav:"current_extended,omitempty"`
	ExtendedChange   string `dynamodbav:"extended_change,omitempty"`
}

// EstimateVersionDynamoRepository persists a claim's estimate version chain
// in one DynamoDB table.
//
// Key layout:
//   - Version rows:  pk = CLAIM#<claim_id>,  sk = VERSION#<number, padded>
//   - Change rows:   pk = VERSION#<version_id>, sk = CHANGE#<line, padded>#...
//
// Version number uniqueness rides on a conditional put of the version row:
// two concurrent imports computing the same next number collide on the same
// (pk, sk) and the loser gets ErrVersionConflict instead of overwriting.
// Rows are never updated or deleted; the chain is an append-only log.
type EstimateVersionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
	logger    *zap.Logger
}

var _ interfaces.IEstimateVersionRepository = (*EstimateVersionDynamoRepository)(nil)

func NewEstimateVersionDynamoRepository(ddb *dynamodb.Client, logger *zap.Logger) *EstimateVersionDynamoRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EstimateVersionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ESTIMATE_VERSIONS_TABLE", defaultVersionsTableName),
		logger:    logger,
	}
}

func versionPK(claimID string) string { return claimKeyPrefix + claimID }

func versionSK(versionNumber int) string {
	return fmt.Sprintf("%s%05d", versionKeyPrefix, versionNumber)
}

func changePK(versionID string) string { return versionKeyPrefix + versionID }

// changeSK orders change rows by line number within a version; the change id
// suffix keeps the key unique when one line number carries several changes
// (an added+removed pair after renumbering, duplicate lines).
func changeSK(c entities.LineItemChange) string {
	return fmt.Sprintf("%s%05d#%s#%s", changeKeyPrefix, c.LineNumber, c.ItemType, c.ID)
}

// GetLatestVersion returns the chain head for a claim, or a zero-value
// version when the claim has no versions yet. The read is strongly
// consistent: diffing against a stale head would corrupt the chain semantics.
func (r *EstimateVersionDynamoRepository) GetLatestVersion(ctx context.Context, claimID string) (entities.EstimateVersion, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("#pk = :pk AND begins_with(#sk, :prefix)"),
		ExpressionAttributeNames: map[string]string{
			"#pk": "pk",
			"#sk": "sk",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk":     &types.AttributeValueMemberS{Value: versionPK(claimID)},
			":prefix": &types.AttributeValueMemberS{Value: versionKeyPrefix},
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(1),
		ConsistentRead:   aws.Bool(true),
	})
	if err != nil {
		return entities.EstimateVersion{}, err
	}
	if len(out.Items) == 0 {
		return entities.EstimateVersion{}, nil
	}

	var it estimateVersionItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.EstimateVersion{}, err
	}
	return fromEstimateVersionItem(it)
}

// CreateVersion writes the version row and its change rows. The version row
// and the first batch of change rows commit in one TransactWriteItems call;
// the version row carries the uniqueness condition, so a lost race fails the
// whole transaction before anything lands.
func (r *EstimateVersionDynamoRepository) CreateVersion(ctx context.Context, v entities.EstimateVersion, changes []entities.LineItemChange) (entities.EstimateVersion, error) {
	versionItem, err := toEstimateVersionItem(v)
	if err != nil {
		return entities.EstimateVersion{}, err
	}
	versionAV, err := attributevalue.MarshalMap(versionItem)
	if err != nil {
		return entities.EstimateVersion{}, err
	}

	transactItems := []types.TransactWriteItem{{
		Put: &types.Put{
			TableName:           aws.String(r.tableName),
			Item:                versionAV,
			ConditionExpression: aws.String("attribute_not_exists(#pk) AND attribute_not_exists(#sk)"),
			ExpressionAttributeNames: map[string]string{
				"#pk": "pk",
				"#sk": "sk",
			},
		},
	}}

	changeAVs := make([]map[string]types.AttributeValue, 0, len(changes))
	for _, c := range changes {
		av, err := attributevalue.MarshalMap(toLineItemChangeItem(c))
		if err != nil {
			return entities.EstimateVersion{}, err
		}
		changeAVs = append(changeAVs, av)
	}

	firstBatch := len(changeAVs)
	if firstBatch > maxTransactItems-1 {
		firstBatch = maxTransactItems - 1
	}
	for _, av := range changeAVs[:firstBatch] {
		transactItems = append(transactItems, types.TransactWriteItem{
			Put: &types.Put{TableName: aws.String(r.tableName), Item: av},
		})
	}

	if _, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: transactItems,
	}); err != nil {
		if isConditionalFailure(err) {
			return entities.EstimateVersion{}, interfaces.ErrVersionConflict
		}
		return entities.EstimateVersion{}, err
	}

	// Change sets beyond the 100-item transaction cap spill into follow-up
	// transactions. The version row above is the commit point for the version
	// number, so a crash here loses only trailing change rows, never the
	// chain's integrity.
	for start := firstBatch; start < len(changeAVs); start += maxTransactItems {
		end := start + maxTransactItems
		if end > len(changeAVs) {
			end = len(changeAVs)
		}
		batch := make([]types.TransactWriteItem, 0, end-start)
		for _, av := range changeAVs[start:end] {
			batch = append(batch, types.TransactWriteItem{
				Put: &types.Put{TableName: aws.String(r.tableName), Item: av},
			})
		}
		if _, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
			TransactItems: batch,
		}); err != nil {
			return entities.EstimateVersion{}, err
		}
	}

	r.logger.Debug("estimate version written",
		zap.String("claim_id", v.ClaimID),
		zap.Int("version_number", v.VersionNumber),
		zap.Int("change_rows", len(changes)))
	return v, nil
}

// GetHistory returns every version of a claim, ascending by version number.
func (r *EstimateVersionDynamoRepository) GetHistory(ctx context.Context, claimID string) ([]entities.EstimateVersion, error) {
	var versions []entities.EstimateVersion

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			KeyConditionExpression: aws.String("#pk = :pk AND begins_with(#sk, :prefix)"),
			ExpressionAttributeNames: map[string]string{
				"#pk": "pk",
				"#sk": "sk",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":pk":     &types.AttributeValueMemberS{Value: versionPK(claimID)},
				":prefix": &types.AttributeValueMemberS{Value: versionKeyPrefix},
			},
			ScanIndexForward:  aws.Bool(true),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		for _, item := range out.Items {
			var it estimateVersionItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			v, err := fromEstimateVersionItem(it)
			if err != nil {
				return nil, err
			}
			versions = append(versions, v)
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	return versions, nil
}

// GetChanges returns a version's line item changes ordered by line number
// (the sort key encodes it).
func (r *EstimateVersionDynamoRepository) GetChanges(ctx context.Context, versionID string) ([]entities.LineItemChange, error) {
	var changes []entities.LineItemChange

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			KeyConditionExpression: aws.String("#pk = :pk AND begins_with(#sk, :prefix)"),
			ExpressionAttributeNames: map[string]string{
				"#pk": "pk",
				"#sk": "sk",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":pk":     &types.AttributeValueMemberS{Value: changePK(versionID)},
				":prefix": &types.AttributeValueMemberS{Value: changeKeyPrefix},
			},
			ScanIndexForward:  aws.Bool(true),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		for _, item := range out.Items {
			var it lineItemChangeItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			c, err := fromLineItemChangeItem(it)
			if err != nil {
				return nil, err
			}
			changes = append(changes, c)
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	return changes, nil
}

func isConditionalFailure(err error) bool {
	var cfe *types.ConditionalCheckFailedException
	if errors.As(err, &cfe) {
		return true
	}
	var tce *types.TransactionCanceledException
	if errors.As(err, &tce) {
		for _, reason := range tce.CancellationReasons {
			if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
				return true
			}
		}
	}
	return false
}

func toEstimateVersionItem(v entities.EstimateVersion) (estimateVersionItem, error) {
	snapshot, err := json.Marshal(v.Snapshot)
	if err != nil {
		return estimateVersionItem{}, err
	}

	it := estimateVersionItem{
		PK:             versionPK(v.ClaimID),
		SK:             versionSK(v.VersionNumber),
		ID:             v.ID,
		ClaimID:        v.ClaimID,
		JobID:          v.JobID,
		VersionNumber:  v.VersionNumber,
		RevisionReason: string(v.RevisionReason),
		Snapshot:       string(snapshot),
		CreatedAt:      v.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if v.DiffSummary != nil {
		summary, err := json.Marshal(v.DiffSummary)
		if err != nil {
			return estimateVersionItem{}, err
		}
		it.DiffSummary = string(summary)
	}
	return it, nil
}

func fromEstimateVersionItem(it estimateVersionItem) (entities.EstimateVersion, error) {
	var snapshot entities.CanonicalEstimate
	if it.Snapshot != "" {
		if err := json.Unmarshal([]byte(it.Snapshot), &snapshot); err != nil {
			return entities.EstimateVersion{}, err
		}
	}

	var summary *entities.DiffSummary
	if it.DiffSummary != "" {
		summary = &entities.DiffSummary{}
		if err := json.Unmarshal([]byte(it.DiffSummary), summary); err != nil {
			return entities.EstimateVersion{}, err
		}
	}

	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.EstimateVersion{
		ID:             it.ID,
		ClaimID:        it.ClaimID,
		JobID:          it.JobID,
		VersionNumber:  it.VersionNumber,
		RevisionReason: entities.RevisionReason(it.RevisionReason),
		Snapshot:       snapshot,
		DiffSummary:    summary,
		CreatedAt:      createdAt,
	}, nil
}

func toLineItemChangeItem(c entities.LineItemChange) lineItemChangeItem {
	return lineItemChangeItem{
		PK:          changePK(c.VersionID),
		SK:          changeSK(c),
		ID:          c.ID,
		VersionID:   c.VersionID,
		LineNumber:  c.LineNumber,
		ItemType:    string(c.ItemType),
		ChangeType:  string(c.ChangeType),
		Description: c.Description,

		PreviousQuantity: decimalToString(c.PreviousQuantity),
		CurrentQuantity:  decimalToString(c.CurrentQuantity),
		QuantityChange:   decimalToString(c.QuantityChange),
		PreviousPrice:    decimalToString(c.PreviousPrice),
		CurrentPrice:     decimalToString(c.CurrentPrice),
		PriceChange:      decimalToString(c.PriceChange),
		PreviousHours:    decimalToString(c.PreviousHours),
		CurrentHours:     decimalToString(c.CurrentHours),
		HoursChange:      decimalToString(c.HoursChange),
		PreviousExtended: decimalToString(c.PreviousExtended),
		CurrentExtended:  decimalToString(c.CurrentExtended),
		ExtendedChange:   decimalToString(c.ExtendedChange),
	}
}

func fromLineItemChangeItem(it lineItemChangeItem) (entities.LineItemChange, error) {
	c := entities.LineItemChange{
		ID:          it.ID,
		VersionID:   it.VersionID,
		LineNumber:  it.LineNumber,
		ItemType:    entities.ItemType(it.ItemType),
		ChangeType:  entities.ChangeType(it.ChangeType),
		Description: it.Description,
	}

	fields := []struct {
		raw  string
		dest **decimal.Decimal
	}{
		{it.PreviousQuantity, &c.PreviousQuantity},
		{it.CurrentQuantity, &c.CurrentQuantity},
		{it.QuantityChange, &c.QuantityChange},
		{it.PreviousPrice, &c.PreviousPrice},
		{it.CurrentPrice, &c.CurrentPrice},
		{it.PriceChange, &c.PriceChange},
		{it.PreviousHours, &c.PreviousHours},
		{it.CurrentHours, &c.CurrentHours},
		{it.HoursChange, &c.HoursChange},
		{it.PreviousExtended, &c.PreviousExtended},
		{it.CurrentExtended, &c.CurrentExtended},
		{it.ExtendedChange, &c.ExtendedChange},
	}
	for _, f := range fields {
		d, err := decimalFromString(f.raw)
		if err != nil {
			return entities.LineItemChange{}, err
		}
		*f.dest = d
	}
	return c, nil
}
