package repository

import (
	"context"
	"testing"
	"time"

	"catrental/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestItemAt(id, requestDate string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id":           strAttr(id),
		"machine_id":   strAttr("m-1"),
		"dealer_id":    strAttr("dealer-1"),
		"user_id":      strAttr("cust-1"),
		"request_type": strAttr("Extension"),
		"status":       strAttr("In-Progress"),
		"request_date": strAttr(requestDate),
	}
}

func TestRentalRequestRepository_CreateAndRoundTrip(t *testing.T) {
	f := &fakeDynamoDB{}
	repo := NewRentalRequestDynamoRepository(f, "requests")

	extendTo := time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC)
	req := entities.RentalRequest{
		ID:          "req-1",
		MachineID:   "m-1",
		DealerID:    "dealer-1",
		UserID:      "cust-1",
		Type:        entities.RentalRequestExtension,
		Status:      entities.RentalRequestInProgress,
		Comments:    "two more weeks",
		Date:        &extendTo,
		RequestDate: repoNow,
		CreatedAt:   repoNow,
		UpdatedAt:   repoNow,
	}
	_, err := repo.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "attribute_not_exists(#id)", aws.ToString(f.putIn.ConditionExpression))
	assert.Equal(t, "1771545600", f.putIn.Item["date"].(*types.AttributeValueMemberN).Value)

	f.getItem = f.putIn.Item
	got, err := repo.GetByID(context.Background(), "req-1")
	require.NoError(t, err)
	assert.Equal(t, entities.RentalRequestExtension, got.Type)
	require.NotNil(t, got.Date)
	assert.True(t, extendTo.Equal(*got.Date))
	assert.True(t, repoNow.Equal(got.RequestDate))
}

func TestRentalRequestRepository_Lists(t *testing.T) {
	t.Run("by user newest first", func(t *testing.T) {
		f := &fakeDynamoDB{pages: []*dynamodb.QueryOutput{{Items: []map[string]types.AttributeValue{
			requestItemAt("req-old", "2026-01-01T08:00:00.000000000Z"),
			requestItemAt("req-new", "2026-01-01T10:00:00.000000000Z"),
		}}}}
		requests, err := NewRentalRequestDynamoRepository(f, "requests").ListByUserID(context.Background(), "cust-1", "")
		require.NoError(t, err)
		require.Len(t, requests, 2)
		assert.Equal(t, "req-new", requests[0].ID)
		assert.Equal(t, "user_id-index", aws.ToString(f.queryIn[0].IndexName))
		assert.Nil(t, f.queryIn[0].FilterExpression)
	})

	t.Run("by dealer with status", func(t *testing.T) {
		f := &fakeDynamoDB{pages: []*dynamodb.QueryOutput{{}}}
		_, err := NewRentalRequestDynamoRepository(f, "requests").ListByDealerID(context.Background(), "dealer-1", entities.RentalRequestInProgress)
		require.NoError(t, err)
		in := f.queryIn[0]
		assert.Equal(t, "dealer_id-index", aws.ToString(in.IndexName))
		assert.Equal(t, "dealer_id", in.ExpressionAttributeNames["#key"])
		assert.Equal(t, "#status = :status", aws.ToString(in.FilterExpression))
		assert.Equal(t, "In-Progress", in.ExpressionAttributeValues[":status"].(*types.AttributeValueMemberS).Value)
	})
}

func TestRentalRequestRepository_ResolveIf(t *testing.T) {
	t.Run("only open requests", func(t *testing.T) {
		f := &fakeDynamoDB{updateAttrs: requestItemAt("req-1", "2026-01-01T08:00:00.000000000Z")}
		_, err := NewRentalRequestDynamoRepository(f, "requests").ResolveIf(context.Background(), "req-1", entities.RentalRequestApproved, "ok")
		require.NoError(t, err)
		assert.Equal(t, "attribute_exists(#id) AND #status = :open", aws.ToString(f.updateIn.ConditionExpression))
		assert.Equal(t, "In-Progress", f.updateIn.ExpressionAttributeValues[":open"].(*types.AttributeValueMemberS).Value)
		assert.Equal(t, "Approved", f.updateIn.ExpressionAttributeValues[":to"].(*types.AttributeValueMemberS).Value)
	})

	t.Run("already resolved", func(t *testing.T) {
		f := &fakeDynamoDB{err: conditionFailed()}
		r, err := NewRentalRequestDynamoRepository(f, "requests").ResolveIf(context.Background(), "req-1", entities.RentalRequestDenied, "no")
		require.NoError(t, err)
		assert.Empty(t, r.ID)
	})
}
