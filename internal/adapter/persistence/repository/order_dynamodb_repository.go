package repository

import (
	"context"
	"sort"
	"time"

	"catrental/internal/domain/entities"
	"catrental/internal/domain/geo"
	"catrental/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const ordersUserIDIndex = "user_id-index"

type orderItem struct {
	ID           string  `dynamodbav:"id"`
	UserID       string  `dynamodbav:"user_id"`
	MachineType  string  `dynamodbav:"machine_type"`
	Quantity     int     `dynamodbav:"quantity"`
	LocationLat  float64 `dynamodbav:"location_lat"`
	LocationLon  float64 `dynamodbav:"location_lon"`
	SiteID       string  `dynamodbav:"site_id"`
	CheckInDate  int64   `dynamodbav:"check_in_date"`
	CheckOutDate int64   `dynamodbav:"check_out_date"`
	Status       string  `dynamodbav:"status"`
	Comments     string  `dynamodbav:"comments,omitempty"`
	CreatedAt    string  `dynamodbav:"created_at"`
	UpdatedAt    string  `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)
type OrderDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb DynamoDBAPI, tableName string) *OrderDynamoRepository {
	return &OrderDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey("id", id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Order, error) {
	items, err := queryAll[orderItem](ctx, r.ddb, &dynamodb.QueryInput{
		TableName:                aws.String(r.tableName),
		IndexName:                aws.String(ordersUserIDIndex),
		KeyConditionExpression:   aws.String("#user_id = :uid"),
		ExpressionAttributeNames: map[string]string{"#user_id": "user_id"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}

	orders := make([]entities.Order, 0, len(items))
	for _, it := range items {
		orders = append(orders, fromOrderItem(it))
	}
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

func (r *OrderDynamoRepository) UpdateStatusIf(ctx context.Context, id string, from, to entities.OrderStatus) (entities.Order, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 stringKey("id", id),
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:    aws.String("SET #status = :to, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from":       &types.AttributeValueMemberS{Value: string(from)},
			":to":         &types.AttributeValueMemberS{Value: string(to)},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       stringKey("id", id),
	})
	return err
}

func toOrderItem(o entities.Order) orderItem {
	return orderItem{
		ID:           o.ID,
		UserID:       o.UserID,
		MachineType:  o.MachineType,
		Quantity:     o.Quantity,
		LocationLat:  o.Location.Lat,
		LocationLon:  o.Location.Lon,
		SiteID:       o.SiteID,
		CheckInDate:  o.CheckInDate.UTC().Unix(),
		CheckOutDate: o.CheckOutDate.UTC().Unix(),
		Status:       string(o.Status),
		Comments:     o.Comments,
		CreatedAt:    formatTime(o.CreatedAt),
		UpdatedAt:    formatTime(o.UpdatedAt),
	}
}

func fromOrderItem(it orderItem) entities.Order {
	return entities.Order{
		ID:           it.ID,
		UserID:       it.UserID,
		MachineType:  it.MachineType,
		Quantity:     it.Quantity,
		Location:     geo.Point{Lat: it.LocationLat, Lon: it.LocationLon},
		SiteID:       it.SiteID,
		CheckInDate:  time.Unix(it.CheckInDate, 0).UTC(),
		CheckOutDate: time.Unix(it.CheckOutDate, 0).UTC(),
		Status:       entities.OrderStatus(it.Status),
		Comments:     it.Comments,
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
}
