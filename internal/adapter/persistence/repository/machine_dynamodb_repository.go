package repository

import (
	"context"
	"log"
	"strings"
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
	machinesStatusIndex   = "status-index"
	machinesUserIDIndex   = "user_id-index"
	machinesDealerIDIndex = "dealer_id-index"
)

type machineItem struct {
	ID                string   `dynamodbav:"machine_id"`
	MachineType       string   `dynamodbav:"machine_type"`
	MachineTypeLower  string   `dynamodbav:"machine_type_lower"`
	LocationLat       *float64 `dynamodbav:"location_lat,omitempty"`
	LocationLon       *float64 `dynamodbav:"location_lon,omitempty"`
	LegacyLocation    string   `dynamodbav:"location,omitempty"`
	SiteID            string   `dynamodbav:"site_id,omitempty"`
	Status            string   `dynamodbav:"status"`
	UserID            string   `dynamodbav:"user_id,omitempty"`
	DealerID          string   `dynamodbav:"dealer_id"`
	CheckInDate       *int64   `dynamodbav:"check_in_date,omitempty"`
	CheckOutDate      *int64   `dynamodbav:"check_out_date,omitempty"`
	EngineHoursPerDay float64  `dynamodbav:"engine_hours_per_day"`
	IdleHours         float64  `dynamodbav:"idle_hours"`
	OperatingDays     int      `dynamodbav:"operating_days"`
	CreatedAt         string   `dynamodbav:"created_at"`
	UpdatedAt         string   `dynamodbav:"updated_at"`
}

// MachineDynamoRepository persists Machine entities in DynamoDB.
//
// Table requirements:
//   - PK: machine_id (string)
//   - GSI: status-index (PK: status)
//   - GSI: user_id-index (PK: user_id), sparse
//   - GSI: dealer_id-index (PK: dealer_id)
type MachineDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IMachineRepository = (*MachineDynamoRepository)(nil)

func NewMachineDynamoRepository(ddb DynamoDBAPI, tableName string) *MachineDynamoRepository {
	return &MachineDynamoRepository{ddb: ddb, tableName: tableName, now: time.Now}
}

func (r *MachineDynamoRepository) Create(ctx context.Context, m entities.Machine) (entities.Machine, error) {
	av, err := attributevalue.MarshalMap(toMachineItem(m))
	if err != nil {
		return entities.Machine{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "machine_id"},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Machine{}, nil
		}
		return entities.Machine{}, err
	}
	return m, nil
}

func (r *MachineDynamoRepository) GetByID(ctx context.Context, id string) (entities.Machine, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey("machine_id", id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Machine{}, err
	}
	if len(out.Item) == 0 {
		return entities.Machine{}, nil
	}

	var it machineItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Machine{}, err
	}
	return fromMachineItem(it), nil
}

func (r *MachineDynamoRepository) ListAvailableByType(ctx context.Context, machineType string, checkIn time.Time) ([]entities.Machine, error) {
	items, err := queryAll[machineItem](ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(machinesStatusIndex),
		KeyConditionExpression: aws.String("#status = :ready"),
		FilterExpression: aws.String(
			"contains(#type_lower, :type) AND (attribute_not_exists(#check_out) OR #check_in <= :check_in)",
		),
		ExpressionAttributeNames: map[string]string{
			"#status":     "status",
			"#type_lower": "machine_type_lower",
			"#check_out":  "check_out_date",
			"#check_in":   "check_in_date",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ready":    &types.AttributeValueMemberS{Value: string(entities.MachineStatusReady)},
			":type":     &types.AttributeValueMemberS{Value: strings.ToLower(strings.TrimSpace(machineType))},
			":check_in": &types.AttributeValueMemberN{Value: formatUnix(checkIn)},
		},
	})
	if err != nil {
		return nil, err
	}
	return fromMachineItems(items), nil
}

func (r *MachineDynamoRepository) ListByUserAndStatus(ctx context.Context, userID string, status entities.MachineStatus) ([]entities.Machine, error) {
	items, err := queryAll[machineItem](ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(machinesUserIDIndex),
		KeyConditionExpression: aws.String("#user_id = :uid"),
		FilterExpression:       aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#user_id": "user_id",
			"#status":  "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid":    &types.AttributeValueMemberS{Value: userID},
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
	})
	if err != nil {
		return nil, err
	}
	return fromMachineItems(items), nil
}

func (r *MachineDynamoRepository) ListByDealerID(ctx context.Context, dealerID string, status entities.MachineStatus) ([]entities.Machine, error) {
	input := &dynamodb.QueryInput{
		TableName:                aws.String(r.tableName),
		IndexName:                aws.String(machinesDealerIDIndex),
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

	items, err := queryAll[machineItem](ctx, r.ddb, input)
	if err != nil {
		return nil, err
	}
	return fromMachineItems(items), nil
}

// ClaimIfReady is the only path that allocates a machine to a customer. The
// ConditionExpression guarantees at most one concurrent approver wins.
func (r *MachineDynamoRepository) ClaimIfReady(ctx context.Context, id string, a entities.MachineAssignment) (entities.Machine, entities.Machine, error) {
	now := r.now().UTC()
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 stringKey("machine_id", id),
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :ready"),
		UpdateExpression: aws.String("SET #status = :in_transit, #user_id = :uid, #check_in = :check_in, " +
			"#check_out = :check_out, #lat = :lat, #lon = :lon, #engine = :zero, #idle = :zero, " +
			"#days = :zero, #updated_at = :updated_at REMOVE #legacy"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "machine_id",
			"#status":     "status",
			"#user_id":    "user_id",
			"#check_in":   "check_in_date",
			"#check_out":  "check_out_date",
			"#lat":        "location_lat",
			"#lon":        "location_lon",
			"#legacy":     "location",
			"#engine":     "engine_hours_per_day",
			"#idle":       "idle_hours",
			"#days":       "operating_days",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ready":      &types.AttributeValueMemberS{Value: string(entities.MachineStatusReady)},
			":in_transit": &types.AttributeValueMemberS{Value: string(entities.MachineStatusInTransit)},
			":uid":        &types.AttributeValueMemberS{Value: a.UserID},
			":check_in":   &types.AttributeValueMemberN{Value: formatUnix(a.CheckInDate)},
			":check_out":  &types.AttributeValueMemberN{Value: formatUnix(a.CheckOutDate)},
			":lat":        &types.AttributeValueMemberN{Value: floatToString(a.Location.Lat)},
			":lon":        &types.AttributeValueMemberN{Value: floatToString(a.Location.Lon)},
			":zero":       &types.AttributeValueMemberN{Value: "0"},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(now)},
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Machine{}, entities.Machine{}, nil
		}
		return entities.Machine{}, entities.Machine{}, err
	}

	var it machineItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Machine{}, entities.Machine{}, err
	}
	previous := fromMachineItem(it)
	return applyAssignment(previous, a, now), previous, nil
}

func (r *MachineDynamoRepository) ReleaseClaim(ctx context.Context, previous entities.Machine, claimedBy string) (entities.Machine, error) {
	previous.UpdatedAt = r.now().UTC()
	av, err := attributevalue.MarshalMap(toMachineItem(previous))
	if err != nil {
		return entities.Machine{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("#status = :in_transit AND #user_id = :uid"),
		ExpressionAttributeNames: map[string]string{
			"#status":  "status",
			"#user_id": "user_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":in_transit": &types.AttributeValueMemberS{Value: string(entities.MachineStatusInTransit)},
			":uid":        &types.AttributeValueMemberS{Value: claimedBy},
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Machine{}, nil
		}
		return entities.Machine{}, err
	}
	return previous, nil
}

func (r *MachineDynamoRepository) UpdateStatusIf(ctx context.Context, id string, from, to entities.MachineStatus) (entities.Machine, error) {
	return r.update(ctx, id, from, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :to, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":to":         &types.AttributeValueMemberS{Value: string(to)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#updated_at": "updated_at",
		}
		if to == entities.MachineStatusReady {
			// A released machine goes back to the pool unassigned.
			expr += " REMOVE #user_id, #check_in, #check_out"
			names["#user_id"] = "user_id"
			names["#check_in"] = "check_in_date"
			names["#check_out"] = "check_out_date"
		}
		return expr, vals, names
	})
}

func (r *MachineDynamoRepository) UpdateUsageIfOccupied(ctx context.Context, id string, usage entities.MachineUsage) (entities.Machine, error) {
	return r.update(ctx, id, entities.MachineStatusOccupied, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #engine = :engine, #idle = :idle, #days = :days, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":engine":     &types.AttributeValueMemberN{Value: floatToString(usage.EngineHoursPerDay)},
			":idle":       &types.AttributeValueMemberN{Value: floatToString(usage.IdleHours)},
			":days":       &types.AttributeValueMemberN{Value: intToString(usage.OperatingDays)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#engine":     "engine_hours_per_day",
			"#idle":       "idle_hours",
			"#days":       "operating_days",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

// update applies a conditional write guarded by the expected current status.
func (r *MachineDynamoRepository) update(
	ctx context.Context,
	id string,
	expected entities.MachineStatus,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Machine, error) {
	now := formatTime(r.now())
	updateExpr, values, names := build(now)
	values[":expected"] = &types.AttributeValueMemberS{Value: string(expected)}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       stringKey("machine_id", id),
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :expected"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "machine_id", "#status": "status"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Machine{}, nil
		}
		return entities.Machine{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Machine{}, nil
	}
	var it machineItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Machine{}, err
	}
	return fromMachineItem(it), nil
}

func applyAssignment(m entities.Machine, a entities.MachineAssignment, now time.Time) entities.Machine {
	loc := a.Location
	checkIn := a.CheckInDate.UTC().Truncate(time.Second)
	checkOut := a.CheckOutDate.UTC().Truncate(time.Second)

	m.Status = entities.MachineStatusInTransit
	m.UserID = a.UserID
	m.Location = &loc
	m.CheckInDate = &checkIn
	m.CheckOutDate = &checkOut
	m.EngineHoursPerDay = 0
	m.IdleHours = 0
	m.OperatingDays = 0
	m.UpdatedAt = now
	return m
}

func toMachineItem(m entities.Machine) machineItem {
	it := machineItem{
		ID:                m.ID,
		MachineType:       m.Type,
		MachineTypeLower:  strings.ToLower(m.Type),
		SiteID:            m.SiteID,
		Status:            string(m.Status),
		UserID:            m.UserID,
		DealerID:          m.DealerID,
		CheckInDate:       unixPtr(m.CheckInDate),
		CheckOutDate:      unixPtr(m.CheckOutDate),
		EngineHoursPerDay: m.EngineHoursPerDay,
		IdleHours:         m.IdleHours,
		OperatingDays:     m.OperatingDays,
		CreatedAt:         formatTime(m.CreatedAt),
		UpdatedAt:         formatTime(m.UpdatedAt),
	}
	if m.Location != nil {
		lat, lon := m.Location.Lat, m.Location.Lon
		it.LocationLat = &lat
		it.LocationLon = &lon
	}
	return it
}

func fromMachineItem(it machineItem) entities.Machine {
	return entities.Machine{
		ID:                it.ID,
		Type:              it.MachineType,
		Location:          machineLocation(it),
		SiteID:            it.SiteID,
		Status:            entities.MachineStatus(it.Status),
		UserID:            it.UserID,
		DealerID:          it.DealerID,
		CheckInDate:       timeFromUnix(it.CheckInDate),
		CheckOutDate:      timeFromUnix(it.CheckOutDate),
		EngineHoursPerDay: it.EngineHoursPerDay,
		IdleHours:         it.IdleHours,
		OperatingDays:     it.OperatingDays,
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
}

func fromMachineItems(items []machineItem) []entities.Machine {
	out := make([]entities.Machine, 0, len(items))
	for _, it := range items {
		out = append(out, fromMachineItem(it))
	}
	return out
}

// machineLocation prefers the numeric attributes and falls back to the legacy
// "lat, lon" string. Records where neither is usable get no location; they
// are logged so the coordinates can be backfilled.
func machineLocation(it machineItem) *geo.Point {
	if it.LocationLat != nil && it.LocationLon != nil {
		p, err := geo.NewPoint(*it.LocationLat, *it.LocationLon)
		if err == nil {
			return &p
		}
		log.Printf("[machine][repo] invalid coordinates machine_id=%s err=%v", it.ID, err)
		return nil
	}
	if it.LegacyLocation == "" {
		log.Printf("[machine][repo] missing location machine_id=%s", it.ID)
		return nil
	}
	p, err := geo.ParsePoint(it.LegacyLocation)
	if err != nil {
		log.Printf("[machine][repo] unparseable legacy location machine_id=%s location=%q", it.ID, it.LegacyLocation)
		return nil
	}
	return &p
}
