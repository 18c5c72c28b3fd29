package guide

import "github.com/eringen/docguide/markup"

// PhoenixSlug is the URL slug of the Phoenix guide.
const PhoenixSlug = "phoenix"

var phoenix = Guide{
	Slug: PhoenixSlug,
	Meta: Meta{
		Title:         "Install Tailwind CSS with Phoenix",
		Description:   "Setting up Tailwind CSS in a Phoenix project.",
		Section:       "Installation",
		Layout:        LayoutDocumentation,
		AllowOverflow: false,
	},
	Steps: []Step{
		{
			Title: "Create your project",
			Body: markup.Body{
				markup.P(
					markup.Text("Start by creating a new Phoenix project if you don't have one set up already. You can follow the "),
					markup.Link("Installation", "https://hexdocs.pm/phoenix/installation.html"),
					markup.Text(" guide to get up and running."),
				),
				markup.P(
					markup.Text("Make sure you have PostgreSQL installed and running. See the Phoienix docs for more details."),
				).WithClass("text-sm"),
			},
			Code: CodeSample{
				Name: "Terminal",
				Lang: LangTerminal,
				Code: "mix phx.new myproject\ncd myproject\nmix ecto.create",
			},
		},
		{
			Title: "Update your dependencies",
			Body:  markup.MustParse("Add the Phoenix Tailwind plugin to your Elixir dependencies."),
			Code: CodeSample{
				Name: "mix.exs",
				Lang: "elixir",
				Code: `  defp deps do
    [
>     {:tailwind, "~> 0.1", runtime: Mix.env() == :dev}
    ]
  end`,
			},
		},
		{
			Title: "Configure the Phoenix Tailwind plugin",
			Body:  markup.MustParse("Phoenix uses the Standalone CLI to integrate with Tailwind CSS. You'll have to configure the version, and asset paths necessary."),
			Code: CodeSample{
				Name: "config.exs",
				Lang: "elixir",
				Code: `  # Use Jason for JSON parsing in Phoenix
  config :phoenix, :json_library, Jason

> config :tailwind, version: "3.0.13", default: [
>   args: ~w(
>     --config=tailwind.config.js
>     --input=css/app.css
>     --output=../priv/static/assets/app.css
>   ),
>   cd: Path.expand("../assets", __DIR__)
> ]`,
			},
		},
		{
			Title: "Build tailwind on deploy",
			Body:  markup.MustParse("You need to explicitly enable watching during development by adding an entry to the `./config/dev.exs` file."),
			Code: CodeSample{
				Name: "mix.exs",
				Lang: "elixir",
				Code: `  defp aliases do
    [
>     "assets.deploy": ["tailwind default --minify", "esbuild default --minify", "phx.digest"]
    ]
  ]`,
			},
		},
		{
			Title: "Enable watching during development",
			Body:  markup.MustParse("You need to explicitly enable watching during development by adding an entry to the `./config/dev.exs` file."),
			Code: CodeSample{
				Name: "dev.exs",
				Lang: "elixir",
				Code: `  watchers: [
>   tailwind: {Tailwind, :install_and_run, [:default, ~w(--watch)]}
  ]`,
			},
		},
		{
			Title: "Install Tailwind CSS",
			Body:  markup.MustParse("Phoenix uses the Standalone CLI to integrate with Tailwind CSS. You'll have to configure the version, and asset paths necessary."),
			Code: CodeSample{
				Name: "Terminal",
				Lang: LangTerminal,
				Code: "mix deps.get\nmix tailwind.install",
			},
		},
		{
			Title: "Configure your template paths",
			Body:  markup.MustParse("Add the paths to all of your template files in your `assets/tailwind.config.js` file."),
			Code: CodeSample{
				Name: "tailwind.config.js",
				Lang: "js",
				Code: `  module.exports = {
>   content: [
>     './js/**/*.js',
>     '../lib/*_web.ex',
>     '../lib/*_web/**/*.*ex',
>   ],
    theme: {
      extend: {},
    },
    plugins: [],
  }`,
			},
		},
		{
			Title: "Add the Tailwind directives to your CSS",
			Body:  markup.MustParse("Add the `@tailwind` directives for each of Tailwind’s layers to `./assets/css/app.css`"),
			Code: CodeSample{
				Name: "app.css",
				Lang: "css",
				Code: "@tailwind base;\n@tailwind components;\n@tailwind utilities;",
			},
		},
		{
			Title: "Remove the default CSS import",
			Body:  markup.MustParse("The css import in `./assets/js/app.js` must be removed as Phoenix is no longer handling the css build pipeline directly."),
			Code: CodeSample{
				Name: "app.js",
				Lang: "diff-js",
				Code: `- // Remove this line if you add a your own CSS build pipeline (e.g postcss).
- import "../css/app.css"`,
			},
		},
		{
			Title: "Start your build process",
			Body:  markup.MustParse("Run your build process with `mix phx.server`."),
			Code: CodeSample{
				Name: "Terminal",
				Lang: LangTerminal,
				Code: "mix phx.server",
			},
		},
		{
			Title: "Start using Tailwind in your project",
			Body:  markup.MustParse("Start using Tailwind’s utility classes to style your content."),
			Code: CodeSample{
				Name: "index.html.heex",
				Lang: "html",
				Code: `<h1 class="text-3xl font-bold underline">
  Hello world!
</h1>`,
			},
		},
	},
}

// Phoenix returns the "Install Tailwind CSS with Phoenix" guide. Every call
// returns a fresh copy.
func Phoenix() Guide {
	return phoenix.Clone()
}
