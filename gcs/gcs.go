// Copyright 2021 Airbus Defence and Space
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package gcs lets GDAL open gs://bucket/object datasets through
// cloud.google.com/go/storage, with osio block caching in front of the
// storage API.
package gcs

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/airbusgeo/godal"
	"github.com/airbusgeo/osio"
	osiogcs "github.com/airbusgeo/osio/gcs"
	"google.golang.org/api/option"
)

// Scheme is the URI scheme of cloud storage objects
const Scheme = "gs://"

type gcsHandler struct {
	prefix          string
	client          *storage.Client
	clientOpts      []option.ClientOption
	blockSize       string
	numCachedBlocks int
	vsiOpts         []godal.VSIHandlerOption
}

// Option is an option that can be passed to Register
type Option func(o *gcsHandler)

// Prefix is the prefix that a file must have in order to be handled by this handler.
// Defaults to "gs://", i.e. this handler will be used when calling godal.Open("gs://mybucket/myfile.tif")
func Prefix(prefix string) Option {
	return func(o *gcsHandler) {
		o.prefix = prefix
	}
}

// Client sets the storage.Client used by the handler. Anonymous and
// CredentialsFile are ignored when a client is given.
func Client(cl *storage.Client) Option {
	return func(o *gcsHandler) {
		o.client = cl
	}
}

// Anonymous creates a client that does not authenticate, for public buckets
func Anonymous() Option {
	return func(o *gcsHandler) {
		o.clientOpts = append(o.clientOpts, option.WithoutAuthentication())
	}
}

// CredentialsFile creates a client authenticated with the given service
// account or refresh token JSON file
func CredentialsFile(path string) Option {
	return func(o *gcsHandler) {
		o.clientOpts = append(o.clientOpts, option.WithCredentialsFile(path))
	}
}

// BlockSize sets the size of requests that will go out to the storage API,
// e.g. "512k" or "1M". Defaults to 512k
func BlockSize(bs string) Option {
	return func(o *gcsHandler) {
		o.blockSize = bs
	}
}

// NumCachedBlocks sets the number of blocks kept in memory. Defaults to 512
func NumCachedBlocks(n int) Option {
	if n < 1 {
		panic("invalid number of cached blocks")
	}
	return func(o *gcsHandler) {
		o.numCachedBlocks = n
	}
}

// VSIOptions are passed to godal.RegisterVSIHandler
func VSIOptions(opts ...godal.VSIHandlerOption) Option {
	return func(o *gcsHandler) {
		o.vsiOpts = append(o.vsiOpts, opts...)
	}
}

func newHandler(opts []Option) *gcsHandler {
	handler := &gcsHandler{
		prefix:          Scheme,
		blockSize:       "512k",
		numCachedBlocks: 512,
	}
	for _, o := range opts {
		o(handler)
	}
	return handler
}

// Register registers a GDAL virtual file handler serving objects of cloud
// storage buckets under the configured prefix. Registering twice on the same
// prefix is a no-op.
//
// The handler keeps using ctx for its storage requests after Register returns.
func Register(ctx context.Context, opts ...Option) error {
	handler := newHandler(opts)
	if godal.HasVSIHandler(handler.prefix) {
		return nil
	}
	return handler.register(ctx)
}

// register builds the storage client if none was given and closes it again
// if the handler cannot be registered.
func (h *gcsHandler) register(ctx context.Context) (err error) {
	if h.client == nil {
		cl, err := storage.NewClient(ctx, h.clientOpts...)
		if err != nil {
			return fmt.Errorf("storage.newclient: %w", err)
		}
		h.client = cl
		defer func() {
			if err != nil {
				_ = cl.Close()
				h.client = nil
			}
		}()
	}
	gcsh, err := osiogcs.Handle(ctx, osiogcs.GCSClient(h.client))
	if err != nil {
		return fmt.Errorf("osio gcs handle: %w", err)
	}
	gcsa, err := osio.NewAdapter(gcsh,
		osio.BlockSize(h.blockSize),
		osio.NumCachedBlocks(h.numCachedBlocks))
	if err != nil {
		return fmt.Errorf("osio.newadapter: %w", err)
	}
	vsiOpts := append([]godal.VSIHandlerOption{godal.VSIHandlerStripPrefix(true)}, h.vsiOpts...)
	if err := godal.RegisterVSIHandler(h.prefix, gcsa, vsiOpts...); err != nil {
		return fmt.Errorf("godal.registervsihandler %s: %w", h.prefix, err)
	}
	return nil
}

// IsRemote tells whether name designates a cloud storage object
func IsRemote(name string) bool {
	return strings.HasPrefix(name, Scheme)
}

// Parse splits a gs://bucket/object URI. Both values are empty if uri is not
// a cloud storage URI or if the bucket or the object is missing.
func Parse(uri string) (bucket, object string) {
	if !IsRemote(uri) {
		return
	}
	uri = uri[len(Scheme):]
	firstSlash := strings.Index(uri, "/")
	if firstSlash == -1 {
		return
	}
	obj := strings.Trim(uri[firstSlash:], "/")
	if obj == "" {
		return
	}
	bucket = uri[0:firstSlash]
	object = obj
	return
}
