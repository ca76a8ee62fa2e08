package validators

import (
	"beautycabin/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
)

var AppointmentValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"name",
			"phone",
			"service",
			"date",
			"time",
			"status",
			"createdAt",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},

			"name": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},

			"phone": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},

			"service": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},

			"date": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},

			"time": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},

			"status": bson.M{
				"bsonType": "string",
				"enum": []string{
					model.StatusPending,
					model.StatusConfirmed,
				},
			},

			"createdAt": bson.M{
				"bsonType": "date",
			},
		},
	},
}
