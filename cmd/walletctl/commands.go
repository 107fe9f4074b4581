package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fastprodman/cashinreward/pkg/apiclient"
)

func parseAmount(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}

	return n, nil
}

func (c *cli) loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login <mobile> <password>",
		Short: "Start a session",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := c.client()
			if err != nil {
				return err
			}

			u, err := api.Login(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			err = c.saveToken(api.Token())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Welcome back, %s. Balance: %d\n", u.Name, u.Balance)

			return nil
		},
	}
}

func (c *cli) registerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "register <mobile> <password> <name>",
		Short: "Create an account and start a session",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := c.client()
			if err != nil {
				return err
			}

			u, err := api.Register(cmd.Context(), args[0], args[1], args[2])
			if err != nil {
				return err
			}

			err = c.saveToken(api.Token())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Welcome, %s. Balance: %d\n", u.Name, u.Balance)

			return nil
		},
	}
}

func (c *cli) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			api, err := c.client()
			if err != nil {
				return err
			}

			err = api.Logout(cmd.Context())
			if err != nil {
				return explain(err)
			}

			err = c.dropToken()
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")

			return nil
		},
	}
}

func (c *cli) balanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Show balance and totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			api, err := c.client()
			if err != nil {
				return err
			}

			u, err := api.Wallet(cmd.Context())
			if err != nil {
				return explain(err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Balance: %d\nEarned: %d\nWithdrawn: %d\n", u.Balance, u.TotalEarned, u.TotalWithdrawn)

			return nil
		},
	}
}

func (c *cli) historyCmd() *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List transactions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			api, err := c.client()
			if err != nil {
				return err
			}

			txs, err := api.Transactions(cmd.Context(), filter)
			if err != nil {
				return explain(err)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "DATE\tTYPE\tAMOUNT\tSTATUS\tDESCRIPTION")

			for _, tx := range txs {
				fmt.Fprintf(tw, "%s\t%s\t%+d\t%s\t%s\n", tx.Date, tx.Type, tx.Amount, tx.Status, tx.Description)
			}

			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "all", "all, deposit, withdraw or reward")

	return cmd
}

func printReceipt(cmd *cobra.Command, r apiclient.Receipt) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s %+d (%s). Balance: %d\n",
		r.Transaction.Description, r.Transaction.Amount, r.Transaction.Status, r.Balance)
}

func (c *cli) depositCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deposit <amount>",
		Short: "Recharge the wallet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}

			api, err := c.client()
			if err != nil {
				return err
			}

			r, err := api.Deposit(cmd.Context(), amount)
			if err != nil {
				return explain(err)
			}

			printReceipt(cmd, r)

			return nil
		},
	}
}

func (c *cli) withdrawCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "withdraw <method> <amount> <destination>",
		Short: "Request a payout (upi, amazon, google, flipkart)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[1])
			if err != nil {
				return err
			}

			api, err := c.client()
			if err != nil {
				return err
			}

			r, err := api.Withdraw(cmd.Context(), args[0], amount, args[2])
			if err != nil {
				return explain(err)
			}

			printReceipt(cmd, r)

			return nil
		},
	}
}

func (c *cli) lifafaCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "lifafa",
		Short: "Create or claim gift envelopes",
	}

	create := &cobra.Command{
		Use:   "create <amount> <quantity>",
		Short: "Pre-pay amount × quantity and get a code",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}

			qty, err := parseAmount(args[1])
			if err != nil {
				return err
			}

			api, err := c.client()
			if err != nil {
				return err
			}

			r, err := api.CreateLifafa(cmd.Context(), amount, qty)
			if err != nil {
				return explain(err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Code: %s\n", r.Code)
			printReceipt(cmd, r.Receipt)

			return nil
		},
	}

	claim := &cobra.Command{
		Use:   "claim <code>",
		Short: "Claim an envelope",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := c.client()
			if err != nil {
				return err
			}

			r, err := api.ClaimLifafa(cmd.Context(), args[0])
			if err != nil {
				return explain(err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "You won %d!\n", r.Reward)
			printReceipt(cmd, r.Receipt)

			return nil
		},
	}

	root.AddCommand(create, claim)

	return root
}

func (c *cli) tasksCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "tasks",
		Short: "List or complete reward tasks",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			api, err := c.client()
			if err != nil {
				return err
			}

			tasks, err := api.Tasks(cmd.Context())
			if err != nil {
				return explain(err)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tTITLE\tREWARD\tSTATUS")

			for _, t := range tasks {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", t.ID, t.Title, t.Reward, t.Status)
			}

			return tw.Flush()
		},
	}

	complete := &cobra.Command{
		Use:   "complete <task-id>",
		Short: "Complete a task and collect its reward",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := c.client()
			if err != nil {
				return err
			}

			r, err := api.CompleteTask(cmd.Context(), args[0])
			if err != nil {
				return explain(err)
			}

			printReceipt(cmd, r)

			return nil
		},
	}

	root.AddCommand(list, complete)

	return root
}

func (c *cli) payoutsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "payouts",
		Short: "Show recent payouts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			api, err := c.client()
			if err != nil {
				return err
			}

			feed, err := api.Payouts(cmd.Context())
			if err != nil {
				return explain(err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Total paid today: %d (%d withdrawals)\n", feed.TotalPaid, feed.Count)

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "USER\tAMOUNT\tMETHOD\tWHEN")

			for _, p := range feed.Payouts {
				fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", p.User, p.Amount, p.Method, p.When)
			}

			return tw.Flush()
		},
	}
}
