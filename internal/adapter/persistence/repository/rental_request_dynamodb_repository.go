package repository

import (
	"context"
	"sort"
	"time"

	"catrental/internal/domain/entities"
	"catrental/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	requestsUserIDIndex   = "user_id-index"
	requestsDealerIDIndex = "dealer_id-index"
)

type rentalRequestItem struct {
	ID            string `dynamodbav:"id"`
	MachineID     string `dynamodbav:"machine_id"`
	DealerID      string `dynamodbav:"dealer_id"`
	UserID        string `dynamodbav:"user_id"`
	Type          string `dynamodbav:"request_type"`
	Status        string `dynamodbav:"status"`
	Comments      string `dynamodbav:"comments,omitempty"`
	Date          *int64 `dynamodbav:"date,omitempty"`
	AdminComments string `dynamodbav:"admin_comments,omitempty"`
	RequestDate   string `dynamodbav:"request_date"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// RentalRequestDynamoRepository persists RentalRequest entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)
//   - GSI: dealer_id-index (PK: dealer_id)
type RentalRequestDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IRentalRequestRepository = (*RentalRequestDynamoRepository)(nil)

func NewRentalRequestDynamoRepository(ddb DynamoDBAPI, tableName string) *RentalRequestDynamoRepository {
	return &RentalRequestDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *RentalRequestDynamoRepository) Create(ctx context.Context, req entities.RentalRequest) (entities.RentalRequest, error) {
	av, err := attributevalue.MarshalMap(toRentalRequestItem(req))
	if err != nil {
		return entities.RentalRequest{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.RentalRequest{}, err
	}
	return req, nil
}

func (r *RentalRequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.RentalRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey("id", id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.RentalRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.RentalRequest{}, nil
	}

	var it rentalRequestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.RentalRequest{}, err
	}
	return fromRentalRequestItem(it), nil
}

func (r *RentalRequestDynamoRepository) ListByUserID(ctx context.Context, userID string, status entities.RentalRequestStatus) ([]entities.RentalRequest, error) {
	return r.list(ctx, requestsUserIDIndex, "user_id", userID, status)
}

func (r *RentalRequestDynamoRepository) ListByDealerID(ctx context.Context, dealerID string, status entities.RentalRequestStatus) ([]entities.RentalRequest, error) {
	return r.list(ctx, requestsDealerIDIndex, "dealer_id", dealerID, status)
}

func (r *RentalRequestDynamoRepository) list(ctx context.Context, index, attr, value string, status entities.RentalRequestStatus) ([]entities.RentalRequest, error) {
	input := &dynamodb.QueryInput{
		TableName:                aws.String(r.tableName),
		IndexName:                aws.String(index),
		KeyConditionExpression:   aws.String("#key = :key"),
		ExpressionAttributeNames: map[string]string{"#key": attr},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":key": &types.AttributeValueMemberS{Value: value},
		},
	}
	if status != "" {
		input.FilterExpression = aws.String("#status = :status")
		input.ExpressionAttributeNames["#status"] = "status"
		input.ExpressionAttributeValues[":status"] = &types.AttributeValueMemberS{Value: string(status)}
	}

	items, err := queryAll[rentalRequestItem](ctx, r.ddb, input)
	if err != nil {
		return nil, err
	}
	requests := make([]entities.RentalRequest, 0, len(items))
	for _, it := range items {
		requests = append(requests, fromRentalRequestItem(it))
	}
	sort.SliceStable(requests, func(i, j int) bool {
		return requests[i].RequestDate.After(requests[j].RequestDate)
	})
	return requests, nil
}

func (r *RentalRequestDynamoRepository) ResolveIf(ctx context.Context, id string, status entities.RentalRequestStatus, adminComments string) (entities.RentalRequest, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 stringKey("id", id),
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :open"),
		UpdateExpression:    aws.String("SET #status = :to, #comments = :comments, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#comments":   "admin_comments",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":open":       &types.AttributeValueMemberS{Value: string(entities.RentalRequestInProgress)},
			":to":         &types.AttributeValueMemberS{Value: string(status)},
			":comments":   &types.AttributeValueMemberS{Value: adminComments},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.RentalRequest{}, nil
		}
		return entities.RentalRequest{}, err
	}
	var it rentalRequestItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.RentalRequest{}, err
	}
	return fromRentalRequestItem(it), nil
}

func toRentalRequestItem(r entities.RentalRequest) rentalRequestItem {
	return rentalRequestItem{
		ID:            r.ID,
		MachineID:     r.MachineID,
		DealerID:      r.DealerID,
		UserID:        r.UserID,
		Type:          string(r.Type),
		Status:        string(r.Status),
		Comments:      r.Comments,
		Date:          unixPtr(r.Date),
		AdminComments: r.AdminComments,
		RequestDate:   formatTime(r.RequestDate),
		CreatedAt:     formatTime(r.CreatedAt),
		UpdatedAt:     formatTime(r.UpdatedAt),
	}
}

func fromRentalRequestItem(it rentalRequestItem) entities.RentalRequest {
	return entities.RentalRequest{
		ID:            it.ID,
		MachineID:     it.MachineID,
		DealerID:      it.DealerID,
		UserID:        it.UserID,
		Type:          entities.RentalRequestType(it.Type),
		Status:        entities.RentalRequestStatus(it.Status),
		Comments:      it.Comments,
		Date:          timeFromUnix(it.Date),
		AdminComments: it.AdminComments,
		RequestDate:   parseTime(it.RequestDate),
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}
