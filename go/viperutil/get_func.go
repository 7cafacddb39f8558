/*
Copyright 2026 The Codepoint Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package viperutil

import (
	"time"

	"github.com/spf13/viper"
)

// getFuncForType picks the viper getter matching T. Types without a
// dedicated getter fall back to UnmarshalKey.
func getFuncForType[T any]() func(v *viper.Viper) func(key string) T {
	var zero T
	switch any(zero).(type) {
	case string:
		return convertGetFunc[string, T]((*viper.Viper).GetString)
	case bool:
		return convertGetFunc[bool, T]((*viper.Viper).GetBool)
	case int:
		return convertGetFunc[int, T]((*viper.Viper).GetInt)
	case int64:
		return convertGetFunc[int64, T]((*viper.Viper).GetInt64)
	case uint:
		return convertGetFunc[uint, T]((*viper.Viper).GetUint)
	case float64:
		return convertGetFunc[float64, T]((*viper.Viper).GetFloat64)
	case time.Duration:
		return convertGetFunc[time.Duration, T]((*viper.Viper).GetDuration)
	case []string:
		return convertGetFunc[[]string, T]((*viper.Viper).GetStringSlice)
	case map[string]string:
		return convertGetFunc[map[string]string, T]((*viper.Viper).GetStringMapString)
	default:
		return unmarshalGetFunc[T]()
	}
}

func convertGetFunc[R, T any](get func(*viper.Viper, string) R) func(v *viper.Viper) func(key string) T {
	return func(v *viper.Viper) func(key string) T {
		return func(key string) T {
			return any(get(v, key)).(T)
		}
	}
}

func unmarshalGetFunc[T any]() func(v *viper.Viper) func(key string) T {
	return func(v *viper.Viper) func(key string) T {
		return func(key string) T {
			var t T
			_ = v.UnmarshalKey(key, &t)
			return t
		}
	}
}
