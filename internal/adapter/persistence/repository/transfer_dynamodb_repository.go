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

const (
	transfersDealerIDIndex = "dealer_id-index"
	transfersOrderIDIndex  = "order_id-index"
)

type transferItem struct {
	ID             string  `dynamodbav:"id"`
	OrderID        string  `dynamodbav:"order_id"`
	MachineID      string  `dynamodbav:"machine_id"`
	DealerID       string  `dynamodbav:"dealer_id"`
	FromUserID     string  `dynamodbav:"from_user_id"`
	ToUserID       string  `dynamodbav:"to_user_id"`
	OriginLat      float64 `dynamodbav:"origin_lat"`
	OriginLon      float64 `dynamodbav:"origin_lon"`
	DestinationLat float64 `dynamodbav:"destination_lat"`
	DestinationLon float64 `dynamodbav:"destination_lon"`
	DistanceKm     float64 `dynamodbav:"distance_km"`
	Status         string  `dynamodbav:"status"`
	AdminComments  string  `dynamodbav:"admin_comments,omitempty"`
	CreatedAt      string  `dynamodbav:"created_at"`
	UpdatedAt      string  `dynamodbav:"updated_at"`
}

// TransferDynamoRepository persists Transfer entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: dealer_id-index (PK: dealer_id)
//   - GSI: order_id-index (PK: order_id)
type TransferDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.ITransferRepository = (*TransferDynamoRepository)(nil)

func NewTransferDynamoRepository(ddb DynamoDBAPI, tableName string) *TransferDynamoRepository {
	return &TransferDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *TransferDynamoRepository) Create(ctx context.Context, t entities.Transfer) (entities.Transfer, error) {
	av, err := attributevalue.MarshalMap(toTransferItem(t))
	if err != nil {
		return entities.Transfer{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Transfer{}, err
	}
	return t, nil
}

func (r *TransferDynamoRepository) GetByID(ctx context.Context, id string) (entities.Transfer, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey("id", id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Transfer{}, err
	}
	if len(out.Item) == 0 {
		return entities.Transfer{}, nil
	}

	var it transferItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Transfer{}, err
	}
	return fromTransferItem(it), nil
}

func (r *TransferDynamoRepository) ListByDealerID(ctx context.Context, dealerID string, status entities.TransferStatus) ([]entities.Transfer, error) {
	input := &dynamodb.QueryInput{
		TableName:                aws.String(r.tableName),
		IndexName:                aws.String(transfersDealerIDIndex),
		KeyConditionExpression:   aws.String("#dealer_id = :did"),
		ExpressionAttributeNames: map[string]string{"#dealer_id": "dealer_id"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":did": &types.AttributeValueMemberS{Value: dealerID},
		},
	}
	if status != "" {
		input.FilterExpression = aws.String("#status = :status")
		input.ExpressionAttributeNames["#status"] = "status"
		input.ExpressionAttributeValues[":status"] = &types.AttributeValueMemberS{Value: string(status)}
	}
	return r.list(ctx, input)
}

func (r *TransferDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.Transfer, error) {
	return r.list(ctx, &dynamodb.QueryInput{
		TableName:                aws.String(r.tableName),
		IndexName:                aws.String(transfersOrderIDIndex),
		KeyConditionExpression:   aws.String("#order_id = :oid"),
		ExpressionAttributeNames: map[string]string{"#order_id": "order_id"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
	})
}

func (r *TransferDynamoRepository) list(ctx context.Context, input *dynamodb.QueryInput) ([]entities.Transfer, error) {
	items, err := queryAll[transferItem](ctx, r.ddb, input)
	if err != nil {
		return nil, err
	}
	transfers := make([]entities.Transfer, 0, len(items))
	for _, it := range items {
		transfers = append(transfers, fromTransferItem(it))
	}
	sort.SliceStable(transfers, func(i, j int) bool {
		return transfers[i].CreatedAt.After(transfers[j].CreatedAt)
	})
	return transfers, nil
}

func (r *TransferDynamoRepository) UpdateStatusIf(ctx context.Context, id string, from, to entities.TransferStatus, comments string) (entities.Transfer, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 stringKey("id", id),
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:    aws.String("SET #status = :to, #comments = :comments, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#comments":   "admin_comments",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from":       &types.AttributeValueMemberS{Value: string(from)},
			":to":         &types.AttributeValueMemberS{Value: string(to)},
			":comments":   &types.AttributeValueMemberS{Value: comments},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Transfer{}, nil
		}
		return entities.Transfer{}, err
	}
	var it transferItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Transfer{}, err
	}
	return fromTransferItem(it), nil
}

func (r *TransferDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       stringKey("id", id),
	})
	return err
}

func toTransferItem(t entities.Transfer) transferItem {
	return transferItem{
		ID:             t.ID,
		OrderID:        t.OrderID,
		MachineID:      t.MachineID,
		DealerID:       t.DealerID,
		FromUserID:     t.FromUserID,
		ToUserID:       t.ToUserID,
		OriginLat:      t.Origin.Lat,
		OriginLon:      t.Origin.Lon,
		DestinationLat: t.Destination.Lat,
		DestinationLon: t.Destination.Lon,
		DistanceKm:     t.DistanceKm,
		Status:         string(t.Status),
		AdminComments:  t.AdminComments,
		CreatedAt:      formatTime(t.CreatedAt),
		UpdatedAt:      formatTime(t.UpdatedAt),
	}
}

func fromTransferItem(it transferItem) entities.Transfer {
	return entities.Transfer{
		ID:            it.ID,
		OrderID:       it.OrderID,
		MachineID:     it.MachineID,
		DealerID:      it.DealerID,
		FromUserID:    it.FromUserID,
		ToUserID:      it.ToUserID,
		Origin:        geo.Point{Lat: it.OriginLat, Lon: it.OriginLon},
		Destination:   geo.Point{Lat: it.DestinationLat, Lon: it.DestinationLon},
		DistanceKm:    it.DistanceKm,
		Status:        entities.TransferStatus(it.Status),
		AdminComments: it.AdminComments,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}
