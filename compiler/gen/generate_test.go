package gen_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/scriptgen/compiler/gen"
	"github.com/syssam/scriptgen/compiler/load"
)

func fixture(t *testing.T) *load.Descriptor {
	t.Helper()
	d, err := load.Load(filepath.Join("..", "load", "testdata", "java-library.yaml"))
	require.NoError(t, err)
	return d
}

// TestRenderGroovyGolden pins the complete groovy rendering of the shared
// descriptor fixture.
func TestRenderGroovyGolden(t *testing.T) {
	t.Parallel()

	g, err := gen.New(fixture(t))
	require.NoError(t, err)

	got, err := g.Render("groovy")
	require.NoError(t, err)

	want := strings.Join([]string{
		"/*",
		" * This file was generated by scriptgen.",
		" *",
		" * Do not edit by hand.",
		" */",
		"",
		"plugins {",
		"    // Apply the java-library plugin.",
		"    id 'java-library'",
		"",
		"    id 'org.jetbrains.kotlin.jvm' version '2.0.0'",
		"}",
		"",
		"repositories {",
		"    mavenCentral()",
		"",
		"    // Company releases.",
		"    maven {",
		"        url = uri('https://repo.example.com/releases')",
		"    }",
		"}",
		"",
		"dependencies {",
		"    implementation 'org.apache.commons:commons-text:1.11.0'",
		"    testImplementation platform('org.junit:junit-bom:5.10.2')",
		"    implementation project(':core')",
		"}",
		"",
		"group = 'com.example'",
		"version = '0.1.0'",
		"tasks.register 'docs'",
		"",
		"tasks.withType(JavaCompile) {",
		"    options.encoding = 'UTF-8'",
		"}",
		"",
		"tasks.named('test') {",
		"    // Use JUnit Platform for unit tests.",
		"    useJUnitPlatform()",
		"}",
		"",
		"tasks.named('integrationTest') {",
		"    maxParallelForks = 4",
		"}",
		"",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestRenderKotlin(t *testing.T) {
	t.Parallel()

	g, err := gen.New(fixture(t))
	require.NoError(t, err)

	got, err := g.Render("kotlin")
	require.NoError(t, err)

	assert.Contains(t, got, `id("java-library")`)
	assert.Contains(t, got, `id("org.jetbrains.kotlin.jvm") version "2.0.0"`)
	assert.Contains(t, got, `implementation("org.apache.commons:commons-text:1.11.0")`)
	assert.Contains(t, got, `testImplementation(platform("org.junit:junit-bom:5.10.2"))`)
	assert.Contains(t, got, `tasks.named<Test>("test") {`)
	assert.Contains(t, got, "tasks.withType<JavaCompile> {")
}

func TestRenderUnknownDialect(t *testing.T) {
	t.Parallel()

	g, err := gen.New(fixture(t))
	require.NoError(t, err)

	_, err = g.Render("scala")
	require.Error(t, err)
	assert.ErrorIs(t, err, gen.ErrGenerationFailed)
}

// TestGenerate writes one file per dialect and returns their paths in
// dialect order.
func TestGenerate(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	g, err := gen.New(fixture(t), gen.WithTarget(dir))
	require.NoError(t, err)

	written, err := g.Generate(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(dir, "build.gradle"),
		filepath.Join(dir, "build.gradle.kts"),
	}, written)

	for i, name := range g.Dialects() {
		data, err := os.ReadFile(written[i])
		require.NoError(t, err)
		want, err := g.Render(name)
		require.NoError(t, err)
		assert.Equal(t, want, string(data), "file content must match a direct render for %s", name)
	}
}

// TestGenerateDeterministic: two runs over the same descriptor produce
// byte-identical files.
func TestGenerateDeterministic(t *testing.T) {
	t.Parallel()

	first, err := gen.New(fixture(t))
	require.NoError(t, err)
	second, err := gen.New(fixture(t))
	require.NoError(t, err)

	for _, name := range first.Dialects() {
		a, err := first.Render(name)
		require.NoError(t, err)
		b, err := second.Render(name)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	}
}

func TestDialectsPrecedence(t *testing.T) {
	t.Parallel()

	// Configured override wins over the descriptor.
	g, err := gen.New(fixture(t), gen.WithDialects("kotlin"))
	require.NoError(t, err)
	assert.Equal(t, []string{"kotlin"}, g.Dialects())

	// Descriptor list wins over the default.
	g, err = gen.New(fixture(t))
	require.NoError(t, err)
	assert.Equal(t, []string{"groovy", "kotlin"}, g.Dialects())

	// Default when neither is set.
	g, err = gen.New(&load.Descriptor{Name: "x"})
	require.NoError(t, err)
	assert.Equal(t, []string{"groovy"}, g.Dialects())
}

func TestHeaderOverride(t *testing.T) {
	t.Parallel()

	g, err := gen.New(fixture(t), gen.WithHeader("Custom header."))
	require.NoError(t, err)

	got, err := g.Render("groovy")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "/*\n * Custom header.\n */\n"))
	assert.NotContains(t, got, "Do not edit by hand.")
}

func TestOptions(t *testing.T) {
	t.Parallel()

	_, err := gen.New(fixture(t), gen.WithTarget(""))
	assert.ErrorIs(t, err, gen.ErrInvalidConfig)

	_, err = gen.New(fixture(t), gen.WithDialects("scala"))
	assert.ErrorIs(t, err, gen.ErrInvalidConfig)

	_, err = gen.New(fixture(t), gen.WithWorkers(0))
	assert.ErrorIs(t, err, gen.ErrInvalidConfig)

	_, err = gen.New(nil)
	assert.ErrorIs(t, err, gen.ErrInvalidConfig)

	_, err = gen.New(fixture(t), gen.WithWorkers(2), gen.WithTarget(t.TempDir()))
	assert.NoError(t, err)
}
