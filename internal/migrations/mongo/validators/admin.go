package validators

import "go.mongodb.org/mongo-driver/bson"

var AdminValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"username",
			"passwordHash",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"username": bson.M{
				"bsonType":  "string",
				"minLength": 1,
				"maxLength": 100,
			},

			// bcrypt output is always 60 characters
			"passwordHash": bson.M{
				"bsonType":  "string",
				"minLength": 60,
				"maxLength": 60,
			},

			"createdAt": bson.M{
				"bsonType": "date",
			},

			"updatedAt": bson.M{
				"bsonType": "date",
			},
		},
	},
}
