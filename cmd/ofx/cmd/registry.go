/*
   Copyright 2025 The DIRPX Authors.

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

package cmd

import (
	"fmt"
	"log/slog"
	"reflect"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"dirpx.dev/ofx"
	"dirpx.dev/ofx/apis"
)

var registryCmd = &cobra.Command{
	Use:   "registry",
	Short: "Inspect the object registry",
}

var registryDemoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Register sample objects and list them by type",
	Args:  cobra.NoArgs,
	RunE:  runRegistryDemo,
}

func init() {
	registryCmd.AddCommand(registryDemoCmd)
	rootCmd.AddCommand(registryCmd)
}

// dataset is a sample object type that names itself.
type dataset struct {
	title string
	rows  int
}

func (d *dataset) EntityName() string { return d.title }

// channel is a sample object type that only describes itself.
type channel struct {
	index int
}

func (c *channel) String() string { return fmt.Sprintf("channel #%d", c.index) }

// roi is a sample object type with no naming capability.
type roi struct {
	x, y, w, h int
}

func runRegistryDemo(cmd *cobra.Command, _ []string) error {
	unsubscribe := ofx.Bus().SubscribeAll(func(ev apis.Event) {
		slog.Debug("registry event", "id", ev.ID, "kind", ev.Kind, "count", len(ev.Objects))
	})
	defer unsubscribe()

	objects := []struct {
		obj  any
		name string
	}{
		{&dataset{title: "blobs", rows: 256}, ""},
		{&dataset{title: "cells", rows: 1024}, "cells.tif"},
		{&channel{index: 1}, ""},
		{&roi{x: 10, y: 10, w: 32, h: 32}, ""},
	}
	for _, o := range objects {
		if err := ofx.AddNamed(o.obj, o.name); err != nil {
			return err
		}
	}
	ofx.Publish(apis.NewEvent(apis.ObjectCreated, &channel{index: 2}))

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "QUERY\tTYPE\tNAME")
	queries := []struct {
		label string
		t     reflect.Type
	}{
		{"any", reflect.TypeFor[any]()},
		{"apis.Namer", reflect.TypeFor[apis.Namer]()},
		{"fmt.Stringer", reflect.TypeFor[fmt.Stringer]()},
		{"*roi", reflect.TypeFor[*roi]()},
	}
	for _, q := range queries {
		for _, obj := range ofx.Objects(q.t) {
			name, err := ofx.Name(obj)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s\t%T\t%s\n", q.label, obj, name)
		}
	}
	return w.Flush()
}
