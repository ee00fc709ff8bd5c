package repository

import (
	"context"
	"strconv"
	"time"

	"catrental/internal/domain/entities"
	"catrental/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type userItem struct {
	ID               string `dynamodbav:"user_id"`
	Name             string `dynamodbav:"name"`
	Email            string `dynamodbav:"email"`
	Role             string `dynamodbav:"role"`
	DealershipID     string `dynamodbav:"dealership_id,omitempty"`
	HealthScore      *int   `dynamodbav:"health_score,omitempty"`
	ScoreLastUpdated string `dynamodbav:"score_last_updated,omitempty"`
	CreatedAt        string `dynamodbav:"created_at"`
}

// UserDynamoRepository reads users and owns their health score attributes.
//
// Table requirements:
//   - PK: user_id (string)
type UserDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IUserRepository = (*UserDynamoRepository)(nil)

func NewUserDynamoRepository(ddb DynamoDBAPI, tableName string) *UserDynamoRepository {
	return &UserDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *UserDynamoRepository) GetByID(ctx context.Context, id string) (entities.User, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey("user_id", id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.User{}, err
	}
	if len(out.Item) == 0 {
		return entities.User{}, nil
	}

	var it userItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.User{}, err
	}
	return fromUserItem(it), nil
}

// UpdateHealthScore is a compare-and-set on health_score: the write only
// lands while the stored score still equals expected.
func (r *UserDynamoRepository) UpdateHealthScore(ctx context.Context, id string, expected *int, score int, at time.Time) (entities.User, error) {
	values := map[string]types.AttributeValue{
		":score":        &types.AttributeValueMemberN{Value: strconv.Itoa(score)},
		":last_updated": &types.AttributeValueMemberS{Value: formatTime(at)},
	}
	condition := "attribute_exists(#id) AND attribute_not_exists(#score)"
	if expected != nil {
		condition = "attribute_exists(#id) AND #score = :expected"
		values[":expected"] = &types.AttributeValueMemberN{Value: strconv.Itoa(*expected)}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 stringKey("user_id", id),
		ConditionExpression: aws.String(condition),
		UpdateExpression:    aws.String("SET #score = :score, #last_updated = :last_updated"),
		ExpressionAttributeNames: map[string]string{
			"#id":           "user_id",
			"#score":        "health_score",
			"#last_updated": "score_last_updated",
		},
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.User{}, nil
		}
		return entities.User{}, err
	}
	var it userItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.User{}, err
	}
	return fromUserItem(it), nil
}

func fromUserItem(it userItem) entities.User {
	u := entities.User{
		ID:           it.ID,
		Name:         it.Name,
		Email:        it.Email,
		Role:         entities.Role(it.Role),
		DealershipID: it.DealershipID,
		HealthScore:  it.HealthScore,
		CreatedAt:    parseTime(it.CreatedAt),
	}
	if it.ScoreLastUpdated != "" {
		t := parseTime(it.ScoreLastUpdated)
		u.ScoreLastUpdated = &t
	}
	return u
}
