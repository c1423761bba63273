package jsoncodec_test

import (
	"fmt"

	"github.com/katalvlaran/praxis/jsoncodec"
)

// ExampleDeserialize demonstrates the positional constructor contract: the
// constructor's parameter order matches the JSON key order.
func ExampleDeserialize() {
	type user struct {
		Name string `json:"name"`
		Age  int    `json:"age"`
	}

	text, _ := jsoncodec.Serialize(user{Name: "Ada", Age: 36})
	fmt.Println(text)

	u, _ := jsoncodec.Deserialize(text, func(values ...any) user {
		return user{
			Name: values[0].(string),
			Age:  int(values[1].(float64)), // generic JSON numbers are float64
		}
	})
	fmt.Println(u.Name, u.Age)
	// Output:
	// {"name":"Ada","age":36}
	// Ada 36
}
