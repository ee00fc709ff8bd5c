package repository

import (
	"context"

	"catrental/internal/domain/entities"
	"catrental/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const healthScoreLogsUserIDIndex = "user_id-index"

type healthScoreLogItem struct {
	ID                 string   `dynamodbav:"id"`
	UserID             string   `dynamodbav:"user_id"`
	OldScore           int      `dynamodbav:"old_score"`
	NewScore           int      `dynamodbav:"new_score"`
	Delta              int      `dynamodbav:"delta"`
	Reason             string   `dynamodbav:"reason"`
	AverageUtilization float64  `dynamodbav:"average_utilization"`
	AffectedMachines   []string `dynamodbav:"affected_machines"`
	UpdatedBy          string   `dynamodbav:"updated_by"`
	Timestamp          string   `dynamodbav:"timestamp"`
}

// HealthScoreLogDynamoRepository stores the score audit trail. Records are
// written once and never updated.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id, SK: timestamp)
type HealthScoreLogDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IHealthScoreLogRepository = (*HealthScoreLogDynamoRepository)(nil)

func NewHealthScoreLogDynamoRepository(ddb DynamoDBAPI, tableName string) *HealthScoreLogDynamoRepository {
	return &HealthScoreLogDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *HealthScoreLogDynamoRepository) Create(ctx context.Context, l entities.HealthScoreLog) (entities.HealthScoreLog, error) {
	av, err := attributevalue.MarshalMap(healthScoreLogItem{
		ID:                 l.ID,
		UserID:             l.UserID,
		OldScore:           l.OldScore,
		NewScore:           l.NewScore,
		Delta:              l.Delta,
		Reason:             l.Reason,
		AverageUtilization: l.AverageUtilization,
		AffectedMachines:   l.AffectedMachines,
		UpdatedBy:          l.UpdatedBy,
		Timestamp:          formatTime(l.Timestamp),
	})
	if err != nil {
		return entities.HealthScoreLog{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.HealthScoreLog{}, err
	}
	return l, nil
}

// ListByUserID returns at most limit records, newest first.
func (r *HealthScoreLogDynamoRepository) ListByUserID(ctx context.Context, userID string, limit int) ([]entities.HealthScoreLog, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:                aws.String(r.tableName),
		IndexName:                aws.String(healthScoreLogsUserIDIndex),
		KeyConditionExpression:   aws.String("#user_id = :uid"),
		ExpressionAttributeNames: map[string]string{"#user_id": "user_id"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(int32(limit)),
	})
	if err != nil {
		return nil, err
	}

	var items []healthScoreLogItem
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, err
	}
	logs := make([]entities.HealthScoreLog, 0, len(items))
	for _, it := range items {
		logs = append(logs, entities.HealthScoreLog{
			ID:                 it.ID,
			UserID:             it.UserID,
			OldScore:           it.OldScore,
			NewScore:           it.NewScore,
			Delta:              it.Delta,
			Reason:             it.Reason,
			AverageUtilization: it.AverageUtilization,
			AffectedMachines:   it.AffectedMachines,
			UpdatedBy:          it.UpdatedBy,
			Timestamp:          parseTime(it.Timestamp),
		})
	}
	return logs, nil
}
